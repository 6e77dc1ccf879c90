package normalizer

import "regexp"

type opWord struct{ zh, en string }

// mathOpWords lists operator glyphs longest-first: two-character glyphs
// (>=, <=) must be tried before their single-character prefixes.
var mathOpWords = []struct {
	symbol string
	word   opWord
}{
	{">=", opWord{"大于等于", "greater than or equal to"}},
	{"<=", opWord{"小于等于", "less than or equal to"}},
	{"≠", opWord{"不等于", "not equal to"}},
	{"≥", opWord{"大于等于", "greater than or equal to"}},
	{"≤", opWord{"小于等于", "less than or equal to"}},
	{"±", opWord{"正负", "plus or minus"}},
	{"√", opWord{"根号", "square root of"}},
	{"×", opWord{"乘以", "times"}},
	{"÷", opWord{"除以", "divided by"}},
	{"=", opWord{"等于", "equals"}},
	{"+", opWord{"加", "plus"}},
	{"^", opWord{"的次方", "to the power of"}},
	{">", opWord{"大于", "greater than"}},
	{"<", opWord{"小于", "less than"}},
}

var mathOpRE = buildMathOpRE()

func buildMathOpRE() *regexp.Regexp {
	pattern := `(-)?(\d+(?:\.\d+)?)?(`
	for i, op := range mathOpWords {
		if i > 0 {
			pattern += "|"
		}
		pattern += regexp.QuoteMeta(op.symbol)
	}
	pattern += `)(-?\d+(?:\.\d+)?)?`
	return regexp.MustCompile(pattern)
}

func opWordFor(symbol string) (opWord, bool) {
	for _, op := range mathOpWords {
		if op.symbol == symbol {
			return op.word, true
		}
	}
	return opWord{}, false
}

// normalizeMathOps rewrites a leading or post-operator "-" directly followed
// by a digit as "negative"/"负", and spells out the operator glyph itself.
// The numeric operands are left as digits for the generic-number pass that
// follows.
func normalizeMathOps(text string, lang Lang) string {
	return rewrite(text, mathOpRE, lang, func(g []string, matchLang Lang) string {
		leadingNeg, lhs, op, rhs := g[1], g[2], g[3], g[4]
		word, ok := opWordFor(op)
		if !ok {
			return g[0]
		}
		var b string
		if leadingNeg != "" {
			b += negativeWord(matchLang)
		}
		b += lhs
		if lhs != "" {
			b += " "
		}
		b += word.zhOrEn(matchLang)
		if rhs != "" {
			b += " "
			if len(rhs) > 0 && rhs[0] == '-' {
				b += negativeWord(matchLang) + rhs[1:]
			} else {
				b += rhs
			}
		}
		return b
	})
}

func (w opWord) zhOrEn(lang Lang) string {
	if lang == LangZH {
		return w.zh
	}
	return w.en
}

func negativeWord(lang Lang) string {
	if lang == LangZH {
		return "负"
	}
	return "negative "
}
