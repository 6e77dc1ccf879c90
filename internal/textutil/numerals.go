package textutil

import "strings"

var chineseDigits = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// chineseGroupUnit labels a 4-digit group boundary: none, 万 (10^4), 亿 (10^8), 万亿 (10^12).
var chineseGroupUnit = [...]string{"", "万", "亿", "万亿"}

var englishDigitWords = [10]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// DigitByDigitChinese renders each ASCII digit in s as its own Chinese digit
// word, ignoring non-digit runes. Used for phone numbers and bare years,
// e.g. "2024" -> "二零二四".
func DigitByDigitChinese(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteString(chineseDigits[r-'0'])
	}
	return b.String()
}

// DigitByDigitEnglish renders each ASCII digit in s as a space-separated
// English digit word, ignoring non-digit runes, e.g. "911" -> "nine one one".
func DigitByDigitEnglish(s string) string {
	var words []string
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		words = append(words, englishDigitWords[r-'0'])
	}
	return strings.Join(words, " ")
}

// IntToChinese converts n to its spelled-out Chinese reading. It supports
// negative numbers, inserts 零 for internal zero runs (including across
// 4-digit group boundaries), omits the leading 一 in 十~十九, and handles
// digit groups up to 万亿 (10^12).
func IntToChinese(n int64) string {
	if n == 0 {
		return "零"
	}
	neg := n < 0
	if neg {
		n = -n
	}

	groups := splitGroups(n) // least-significant group first

	var parts []string
	started := false
	pendingZero := false
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			if started {
				pendingZero = true
			}
			continue
		}
		if pendingZero || (started && g < 1000) {
			parts = append(parts, "零")
			pendingZero = false
		}
		text := groupToChinese(g)
		if i > 0 && i < len(chineseGroupUnit) {
			text += chineseGroupUnit[i]
		}
		parts = append(parts, text)
		started = true
	}

	result := strings.Join(parts, "")
	if strings.HasPrefix(result, "一十") {
		result = strings.TrimPrefix(result, "一")
	}
	if neg {
		return "负" + result
	}
	return result
}

// splitGroups splits n into base-10000 groups, least-significant first.
func splitGroups(n int64) []int64 {
	var groups []int64
	for n > 0 {
		groups = append(groups, n%10000)
		n /= 10000
	}
	if len(groups) == 0 {
		groups = []int64{0}
	}
	return groups
}

// groupToChinese renders a value in [1, 9999] to its Chinese reading,
// inserting 零 for internal zero runs. It never drops the 一 in 十~十九
// itself: that contraction only applies when the result is the leading
// element of the whole number, which IntToChinese handles once on the
// fully assembled reading.
func groupToChinese(n int64) string {
	units := []string{"", "十", "百", "千"}
	digits := make([]int64, 0, 4)
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}

	var b strings.Builder
	zeroPending := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d == 0 {
			zeroPending = true
			continue
		}
		if zeroPending {
			b.WriteString("零")
			zeroPending = false
		}
		b.WriteString(chineseDigits[d])
		b.WriteString(units[i])
	}

	return b.String()
}

// romanValues maps subtractive-aware Roman numeral glyphs to their values,
// longest (two-character) glyphs first so the greedy scan in RomanToInt
// prefers them.
var romanValues = []struct {
	sym string
	val int
}{
	{"CM", 900}, {"CD", 400}, {"XC", 90}, {"XL", 40}, {"IX", 9}, {"IV", 4},
	{"M", 1000}, {"D", 500}, {"C", 100}, {"L", 50}, {"X", 10}, {"V", 5}, {"I", 1},
}

// RomanToInt parses a Roman numeral string, applying the subtractive rule
// (IV=4, IX=9, XL=40, XC=90, CD=400, CM=900). Strings of length < 2 are
// rejected to avoid false positives on lone "I" in ordinary text.
func RomanToInt(s string) (int, bool) {
	if len(s) < 2 {
		return 0, false
	}
	up := strings.ToUpper(s)
	total := 0
	i := 0
	for i < len(up) {
		matched := false
		for _, rv := range romanValues {
			if strings.HasPrefix(up[i:], rv.sym) {
				total += rv.val
				i += len(rv.sym)
				matched = true
				break
			}
		}
		if !matched {
			return 0, false
		}
	}
	return total, true
}
