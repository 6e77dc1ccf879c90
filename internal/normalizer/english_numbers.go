package normalizer

import "strings"

var onesWords = [20]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensWords = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scaleWords = [5]string{"", "thousand", "million", "billion", "trillion"}

// CardinalEnglish spells out n as an English cardinal number, e.g.
// 115 -> "one hundred fifteen", 2024 -> "two thousand twenty-four".
func CardinalEnglish(n int64) string {
	if n == 0 {
		return "zero"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	word := cardinalUnsigned(n)
	if neg {
		return "negative " + word
	}
	return word
}

func cardinalUnsigned(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		t, o := n/10, n%10
		w := tensWords[t]
		if o > 0 {
			w += "-" + onesWords[o]
		}
		return w
	case n < 1000:
		h, rem := n/100, n%100
		w := onesWords[h] + " hundred"
		if rem > 0 {
			w += " " + cardinalUnsigned(rem)
		}
		return w
	}

	var groups []int64
	for m := n; m > 0; m /= 1000 {
		groups = append(groups, m%1000)
	}
	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		w := cardinalUnsigned(g)
		if i > 0 && i < len(scaleWords) {
			w += " " + scaleWords[i]
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, " ")
}

// OrdinalEnglish spells out n as an English ordinal, e.g. 1 -> "first",
// 21 -> "twenty-first", 115 -> "one hundred fifteenth".
func OrdinalEnglish(n int) string {
	card := CardinalEnglish(int64(n))
	switch {
	case strings.HasSuffix(card, "one"):
		return strings.TrimSuffix(card, "one") + "first"
	case strings.HasSuffix(card, "two"):
		return strings.TrimSuffix(card, "two") + "second"
	case strings.HasSuffix(card, "three"):
		return strings.TrimSuffix(card, "three") + "third"
	case strings.HasSuffix(card, "five"):
		return strings.TrimSuffix(card, "five") + "fifth"
	case strings.HasSuffix(card, "eight"):
		return strings.TrimSuffix(card, "eight") + "eighth"
	case strings.HasSuffix(card, "nine"):
		return strings.TrimSuffix(card, "nine") + "ninth"
	case strings.HasSuffix(card, "twelve"):
		return strings.TrimSuffix(card, "twelve") + "twelfth"
	case strings.HasSuffix(card, "y"):
		return strings.TrimSuffix(card, "y") + "ieth"
	default:
		return card + "th"
	}
}

// yearToEnglish spells a 4-digit year in the conventional "twenty
// twenty-four" style, with an "oh" reading when the last two digits are
// 1-9 (e.g. 2005 -> "twenty oh five").
func yearToEnglish(y int) string {
	century := y / 100
	rem := y % 100
	first := cardinalUnsigned(int64(century))
	if rem == 0 {
		return first + " hundred"
	}
	var second string
	if rem < 10 {
		second = "oh " + onesWords[rem]
	} else {
		second = cardinalUnsigned(int64(rem))
	}
	return first + " " + second
}
