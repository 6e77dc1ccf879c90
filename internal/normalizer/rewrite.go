package normalizer

import (
	"regexp"
	"strings"
)

// rewrite scans text for re's matches and replaces each with render's
// result. render receives the submatch group texts (group 0 is the whole
// match; missing optional groups are "") and the language resolved for that
// match's position. Matches never overlap and are processed left to right,
// so later passes only ever see the previous pass's output.
func rewrite(text string, re *regexp.Regexp, lang Lang, render func(groups []string, matchLang Lang) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if start < last {
			continue // defensive: skip overlap with a previous replacement
		}
		b.WriteString(text[last:start])
		groups := submatchTexts(text, loc)
		b.WriteString(render(groups, langFor(lang, text, start, end)))
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

func submatchTexts(text string, loc []int) []string {
	n := len(loc) / 2
	out := make([]string, n)
	for i := 0; i < n; i++ {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 {
			continue
		}
		out[i] = text[s:e]
	}
	return out
}
