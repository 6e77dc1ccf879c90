// Package textutil provides UTF-8 segmentation, script classification, and
// token/lexicon file readers shared by the normalizer and phonemizer
// backends.
package textutil

import "unicode/utf8"

// Chars splits s into a slice of complete UTF-8 code-point strings. Unlike
// ranging over s as []rune, the result elements stay strings so callers can
// feed them straight back into map lookups without re-encoding.
func Chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// IsCJK reports whether the first rune of s is a CJK unified ideograph
// (U+4E00-U+9FFF). In UTF-8 these encode as three bytes with the lead byte
// in 0xE4-0xE9, which is why some implementations sniff the lead byte
// directly; decoding the rune is equivalent and clearer.
func IsCJK(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsLatinLetter reports whether s is a single ASCII letter.
func IsLatinLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsASCIIDigit reports whether s is a single ASCII digit.
func IsASCIIDigit(s string) bool {
	if len(s) != 1 {
		return false
	}
	return s[0] >= '0' && s[0] <= '9'
}

// punctuation is the curated set recognized by the phonemizers: ASCII
// punctuation plus full-width CJK punctuation and quotation marks.
var punctuation = map[string]bool{
	",": true, ".": true, "!": true, "?": true, ";": true, ":": true,
	"'": true, "\"": true, "(": true, ")": true, "-": true, "_": true,
	"，": true, "。": true, "！": true, "？": true, "；": true, "：": true,
	"、": true, "「": true, "」": true, "『": true, "』": true,
	"（": true, "）": true, "“": true, "”": true, "‘": true, "’": true,
	"《": true, "》": true, "…": true, "—": true,
}

// IsPunctuation reports whether s is a recognized punctuation mark.
func IsPunctuation(s string) bool {
	return punctuation[s]
}

// fullToASCII maps full-width CJK punctuation to its ASCII counterpart.
// asciiToFull is its inverse, built once from the same table; where several
// full-width marks share one ASCII counterpart, the inverse is pinned to a
// fixed one of them.
var fullToASCII = map[string]string{
	"，": ",", "。": ".", "！": "!", "？": "?", "；": ";", "：": ":",
	"、": ",", "「": "\"", "」": "\"", "『": "\"", "』": "\"",
	"（": "(", "）": ")", "“": "\"", "”": "\"", "‘": "'", "’": "'",
	"《": "\"", "》": "\"", "…": "...", "—": "-",
}

var asciiToFull map[string]string

func init() {
	asciiToFull = make(map[string]string, len(fullToASCII))
	for full, ascii := range fullToASCII {
		if _, exists := asciiToFull[ascii]; !exists {
			asciiToFull[ascii] = full
		}
	}
	asciiToFull[","] = "，"
	asciiToFull["\""] = "“"
	asciiToFull["'"] = "‘"
}

// FullWidthToASCII maps a full-width CJK punctuation mark to its ASCII
// counterpart. ok is false when s has no mapping.
func FullWidthToASCII(s string) (string, bool) {
	v, ok := fullToASCII[s]
	return v, ok
}

// ASCIIToFullWidth maps an ASCII punctuation mark to its CJK full-width
// counterpart. ok is false when s has no mapping.
func ASCIIToFullWidth(s string) (string, bool) {
	v, ok := asciiToFull[s]
	return v, ok
}
