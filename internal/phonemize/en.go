package phonemize

import (
	"fmt"
	"log"

	"tts/internal/textutil"
)

// EN phonemizes English text for Matcha-EN: IPA via the external
// phonemizer, Gruut-US rewritten, then tokenized against the acoustic
// model's own symbol vocabulary.
type EN struct {
	tokens    textutil.TokenMap
	maxSymLen int
}

// NewEN loads the Matcha-EN token vocabulary (0-indexed, one symbol per
// line or "symbol id" pairs).
func NewEN(tokensPath string) (*EN, error) {
	tokens, err := textutil.ReadTokenMap(tokensPath, 0)
	if err != nil {
		return nil, err
	}
	return &EN{tokens: tokens, maxSymLen: maxRuneLen(tokens)}, nil
}

// Tokenize returns token ids for text. If text contains any CJK character
// it silently returns an empty sequence, per the Matcha-EN contract.
func (e *EN) Tokenize(text string) ([]int64, error) {
	if containsCJK(text) {
		return nil, nil
	}
	if !EspeakAvailable() {
		return nil, fmt.Errorf("phonemize: espeak-ng not found")
	}
	raw, err := ToIPA(text)
	if err != nil {
		return nil, err
	}
	ipa := gruutUSRewrite(cleanIPA(raw))

	var ids []int64
	if id, ok := e.tokens["^"]; ok {
		ids = append(ids, id)
	}
	ids = append(ids, symbolsToIDs(ipa, e.tokens, e.maxSymLen)...)
	if id, ok := e.tokens["$"]; ok {
		ids = append(ids, id)
	}
	return ids, nil
}

func containsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

func maxRuneLen(tokens textutil.TokenMap) int {
	max := 1
	for sym := range tokens {
		if n := len([]rune(sym)); n > max {
			max = n
		}
	}
	return max
}

// symbolsToIDs max-matches ipa against tokens longest-symbol-first,
// skipping (and logging) any scalar that has no entry.
func symbolsToIDs(ipa string, tokens textutil.TokenMap, maxLen int) []int64 {
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
			log.Printf("phonemize: skipping unknown IPA glyph %q", runes[i])
			i++
		}
	}
	return ids
}
