package normalizer

// Normalize rewrites text in fixed pass order: dates, times, bare years,
// currency, phone numbers, percentages, units, math operators, then generic
// numbers. Each pass only sees the previous pass's output, so earlier passes
// must consume the digit runs they own before the generic-number pass would
// otherwise spell them out on its own. lang forces every match to one
// language, or LangAuto to pick per-match from the surrounding script.
func Normalize(text string, lang Lang) string {
	text = normalizeDates(text, lang)
	text = normalizeTimes(text, lang)
	text = normalizeBareYears(text, lang)
	text = normalizeCurrency(text, lang)
	text = normalizePhones(text, lang)
	text = normalizePercent(text, lang)
	text = normalizeUnits(text, lang)
	text = normalizeMathOps(text, lang)
	text = genericNumbers(text, lang)
	return text
}
