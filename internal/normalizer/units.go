package normalizer

import "regexp"

type unitWord struct{ zh, en string }

// unitWords lists unit symbols longest-first so the alternation in unitRE
// prefers "km/h" over "m" at the same start position.
var unitWords = []struct {
	symbol string
	word   unitWord
}{
	{"km/h", unitWord{"千米每小时", "kilometers per hour"}},
	{"m/s", unitWord{"米每秒", "meters per second"}},
	{"m²", unitWord{"平方米", "square meters"}},
	{"m³", unitWord{"立方米", "cubic meters"}},
	{"°C", unitWord{"摄氏度", "degrees Celsius"}},
	{"°F", unitWord{"华氏度", "degrees Fahrenheit"}},
	{"km", unitWord{"千米", "kilometers"}},
	{"cm", unitWord{"厘米", "centimeters"}},
	{"mm", unitWord{"毫米", "millimeters"}},
	{"kg", unitWord{"千克", "kilograms"}},
	{"mg", unitWord{"毫克", "milligrams"}},
	{"kB", unitWord{"千字节", "kilobytes"}},
	{"MB", unitWord{"兆字节", "megabytes"}},
	{"GB", unitWord{"吉字节", "gigabytes"}},
	{"TB", unitWord{"太字节", "terabytes"}},
	{"kHz", unitWord{"千赫兹", "kilohertz"}},
	{"MHz", unitWord{"兆赫兹", "megahertz"}},
	{"GHz", unitWord{"吉赫兹", "gigahertz"}},
	{"Hz", unitWord{"赫兹", "hertz"}},
	{"kW", unitWord{"千瓦", "kilowatts"}},
	{"ml", unitWord{"毫升", "milliliters"}},
	{"min", unitWord{"分钟", "minutes"}},
	{"L", unitWord{"升", "liters"}},
	{"g", unitWord{"克", "grams"}},
	{"m", unitWord{"米", "meters"}},
	{"s", unitWord{"秒", "seconds"}},
	{"h", unitWord{"小时", "hours"}},
	{"W", unitWord{"瓦", "watts"}},
	{"V", unitWord{"伏", "volts"}},
	{"A", unitWord{"安", "amps"}},
}

var unitRE = buildUnitRE()

func buildUnitRE() *regexp.Regexp {
	pattern := `(\d+(?:\.\d+)?)\s?(`
	for i, u := range unitWords {
		if i > 0 {
			pattern += "|"
		}
		pattern += regexp.QuoteMeta(u.symbol)
	}
	pattern += `)`
	return regexp.MustCompile(pattern)
}

func unitWordFor(symbol string) (unitWord, bool) {
	for _, u := range unitWords {
		if u.symbol == symbol {
			return u.word, true
		}
	}
	return unitWord{}, false
}

func normalizeUnits(text string, lang Lang) string {
	return rewrite(text, unitRE, lang, func(g []string, matchLang Lang) string {
		word, ok := unitWordFor(g[2])
		if !ok {
			return g[0]
		}
		spelled := renderNumber(g[1], matchLang)
		if matchLang == LangZH {
			return spelled + word.zh
		}
		return spelled + " " + word.en
	})
}
