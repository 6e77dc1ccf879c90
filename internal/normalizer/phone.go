package normalizer

import "regexp"

// phoneRE matches an 11-digit mobile number starting 1[3-9], or a 3-4 digit
// area code followed by a 7-8 digit local number, each read digit-by-digit.
var phoneRE = regexp.MustCompile(`1[3-9]\d{9}|\d{3,4}-\d{7,8}`)

func normalizePhones(text string, lang Lang) string {
	return rewrite(text, phoneRE, lang, func(g []string, matchLang Lang) string {
		return digitByDigit(g[0], matchLang)
	})
}
