package phonemize

import (
	"strconv"
	"strings"

	"github.com/mozillazg/go-pinyin"

	"tts/internal/textutil"
)

// ZHEN phonemizes code-switched Chinese-English text for Matcha-ZH-EN: it
// walks the input by script-class run, converting CJK runs through pinyin,
// Latin runs through IPA (or, for a Roman numeral word, the numeric-reading
// path), and digit runs through the Chinese numeral reading before pinyin.
// It never inserts blank tokens.
type ZHEN struct {
	tokens     textutil.TokenMap
	maxSymLen  int
	pinyinArgs pinyin.Args
}

// NewZHEN loads the 1-indexed bilingual token vocabulary.
func NewZHEN(tokensPath string) (*ZHEN, error) {
	tokens, err := textutil.ReadTokenMap(tokensPath, 1)
	if err != nil {
		return nil, err
	}
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	args.Heteronym = false
	return &ZHEN{tokens: tokens, maxSymLen: maxRuneLen(tokens), pinyinArgs: args}, nil
}

// Tokenize returns the bilingual token id sequence for text. Unknown
// symbols map to token id 1, never to a blank/pad id.
func (z *ZHEN) Tokenize(text string) []int64 {
	runes := []rune(text)
	var ids []int64
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			j := i + 1
			for j < len(runes) && (isDigitRune(runes[j]) || (runes[j] == '.' && j+1 < len(runes) && isDigitRune(runes[j+1]))) {
				j++
			}
			ids = append(ids, z.numberToIDs(string(runes[i:j]))...)
			i = j
		case r >= 0x4E00 && r <= 0x9FFF:
			j := i + 1
			for j < len(runes) && runes[j] >= 0x4E00 && runes[j] <= 0x9FFF {
				j++
			}
			ids = append(ids, z.cjkRunToIDs(string(runes[i:j]))...)
			i = j
		case isASCIILetter(r):
			j := i + 1
			for j < len(runes) && isASCIILetter(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			if n, ok := textutil.RomanToInt(word); ok {
				ids = append(ids, z.numberToIDs(strconv.Itoa(n))...)
			} else {
				ids = append(ids, z.englishWordToIDs(word)...)
			}
			i = j
		default:
			ids = append(ids, z.symbolToID(string(r)))
			i++
		}
	}
	return ids
}

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// numberToIDs reads a digit run as a Chinese numeral ("点" for a decimal
// point) and pinyin-tokenizes the result.
func (z *ZHEN) numberToIDs(numText string) []int64 {
	intPart, fracPart, hasFrac := strings.Cut(numText, ".")
	reading := textutil.DigitByDigitChinese(intPart)
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		reading = textutil.IntToChinese(n)
	}
	if hasFrac {
		reading += "点" + textutil.DigitByDigitChinese(fracPart)
	}
	return z.cjkRunToIDs(reading)
}

// cjkRunToIDs pinyin-converts a run of hanzi (TONE3 style, neutral tone
// forced to "5") and maps each syllable to a token id, lowercase fallback.
func (z *ZHEN) cjkRunToIDs(hanzi string) []int64 {
	syllables := pinyin.LazyConvert(hanzi, &z.pinyinArgs)
	ids := make([]int64, 0, len(syllables))
	for _, syl := range syllables {
		if syl == "" {
			continue
		}
		last := syl[len(syl)-1]
		if last < '1' || last > '5' {
			syl += "5"
		}
		ids = append(ids, z.lookupOrUnknown(strings.ToLower(syl)))
	}
	return ids
}

func (z *ZHEN) englishWordToIDs(word string) []int64 {
	raw, err := ToIPA(word)
	if err != nil {
		return []int64{1}
	}
	ipa := gruutUSRewrite(cleanIPA(raw))
	return symbolsToIDsOrUnknown(ipa, z.tokens, z.maxSymLen)
}

func (z *ZHEN) symbolToID(ch string) int64 {
	if ascii, ok := textutil.FullWidthToASCII(ch); ok {
		ch = ascii
	}
	return z.lookupOrUnknown(ch)
}

func (z *ZHEN) lookupOrUnknown(key string) int64 {
	if id, ok := z.tokens[key]; ok {
		return id
	}
	return 1
}

// symbolsToIDsOrUnknown is symbolsToIDs but maps an unmatched glyph to id 1
// instead of skipping it, per the bilingual backend's "unknown maps to 1" rule.
func symbolsToIDsOrUnknown(ipa string, tokens textutil.TokenMap, maxLen int) []int64 {
	runes := []rune(ipa)
	var ids []int64
	for i := 0; i < len(runes); {
		matched := false
		upper := maxLen
		if i+upper > len(runes) {
			upper = len(runes) - i
		}
		for l := upper; l >= 1; l-- {
			cand := string(runes[i : i+l])
			if id, ok := tokens[cand]; ok {
				ids = append(ids, id)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			ids = append(ids, 1)
			i++
		}
	}
	return ids
}
