// Package normalizer rewrites raw text in fixed-order passes (dates, times,
// years, currency, phone numbers, percentages, units, math operators,
// generic numbers) into the spelled-out form the phonemizers expect.
package normalizer

import (
	"strconv"

	"tts/internal/textutil"
)

// Lang selects which language a pass renders into. LangAuto asks each match
// to pick its own language from the surrounding ten-character window.
type Lang int

const (
	LangAuto Lang = iota
	LangZH
	LangEN
)

// langFor resolves the language to render a given match in: the forced
// language, if any, or a majority-script vote over the ten runes on either
// side of the match in the pass's input string.
func langFor(forced Lang, full string, start, end int) Lang {
	if forced != LangAuto {
		return forced
	}
	before := lastNRunes(full[:start], 10)
	after := firstNRunes(full[end:], 10)
	cjk, latin := 0, 0
	for _, r := range before {
		countScript(r, &cjk, &latin)
	}
	for _, r := range after {
		countScript(r, &cjk, &latin)
	}
	if cjk >= latin {
		return LangZH
	}
	return LangEN
}

func countScript(r rune, cjk, latin *int) {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF:
		*cjk++
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		*latin++
	}
}

func lastNRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[len(rs)-n:])
}

func firstNRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}

// yearDigitsChinese spells a bare year digit-by-digit, e.g. 2024 -> "二零二四".
func yearDigitsChinese(y int) string {
	return textutil.DigitByDigitChinese(strconv.Itoa(y))
}
