package normalizer

import "regexp"

// percentRE matches a number immediately followed by a percent sign.
var percentRE = regexp.MustCompile(`\d+(?:\.\d+)?%`)

func normalizePercent(text string, lang Lang) string {
	return rewrite(text, percentRE, lang, func(g []string, matchLang Lang) string {
		amount := g[0][:len(g[0])-len("%")]
		spelled := renderNumber(amount, matchLang)
		if matchLang == LangZH {
			return "百分之" + spelled
		}
		return spelled + " percent"
	})
}
