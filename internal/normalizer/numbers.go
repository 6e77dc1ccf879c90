package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"tts/internal/textutil"
)

// numberRE matches a signed integer or decimal with an optional scientific
// notation exponent: -123, 3.14, 6.02e23, 1E-9.
var numberRE = regexp.MustCompile(`-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`)

// renderNumber spells out a matched number literal (as produced by
// numberRE) in the given language: cardinal integer part, digit-by-digit
// fractional part after a "point"/"点" separator, and a "times ten to the
// power of N" / "乘以十的N次方" tail for a scientific-notation exponent.
func renderNumber(lit string, lang Lang) string {
	mantissa, exp, hasExp := splitExponent(lit)
	intPart, fracPart, hasFrac := strings.Cut(mantissa, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	var base string
	if err != nil {
		// overflow or malformed: fall back to digit-by-digit reading
		base = digitByDigit(intPart, lang)
	} else if lang == LangZH {
		base = textutil.IntToChinese(n)
	} else {
		base = CardinalEnglish(n)
	}

	if hasFrac {
		if lang == LangZH {
			base += "点" + textutil.DigitByDigitChinese(fracPart)
		} else {
			base += " point " + textutil.DigitByDigitEnglish(fracPart)
		}
	}

	if hasExp {
		expN, err := strconv.Atoi(exp)
		if err == nil {
			if lang == LangZH {
				base += "乘以十的" + textutil.IntToChinese(int64(expN)) + "次方"
			} else {
				base += " times ten to the power of " + CardinalEnglish(int64(expN))
			}
		}
	}
	return base
}

func digitByDigit(s string, lang Lang) string {
	if lang == LangZH {
		return textutil.DigitByDigitChinese(s)
	}
	return textutil.DigitByDigitEnglish(s)
}

// splitExponent splits a numberRE match into its mantissa and optional
// exponent digits (sign included), e.g. "6.02e-23" -> "6.02", "-23", true.
func splitExponent(lit string) (mantissa, exp string, hasExp bool) {
	idx := strings.IndexAny(lit, "eE")
	if idx < 0 {
		return lit, "", false
	}
	return lit[:idx], lit[idx+1:], true
}

// genericNumbers is the final normalization pass: any remaining bare number
// literal not already consumed by an earlier pass is spelled out.
func genericNumbers(text string, lang Lang) string {
	return rewrite(text, numberRE, lang, func(groups []string, matchLang Lang) string {
		return renderNumber(groups[0], matchLang)
	})
}
