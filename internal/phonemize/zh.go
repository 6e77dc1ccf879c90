package phonemize

import (
	"strings"

	"tts/internal/textutil"
)

// ZH phonemizes Chinese text for Matcha-ZH: punctuation normalization,
// maximum-match word segmentation over the shipped lexicon, then a lexicon
// → direct-token → punctuation → per-character fallback chain per word.
type ZH struct {
	lexicon    textutil.Lexicon
	tokens     textutil.TokenMap
	dict       map[string]bool
	maxWordLen int
}

// NewZH loads the lexicon and 0-indexed token vocabulary. The lexicon's own
// keys double as the maximum-match segmentation dictionary.
func NewZH(lexiconPath, tokensPath string) (*ZH, error) {
	lex, err := textutil.ReadLexicon(lexiconPath)
	if err != nil {
		return nil, err
	}
	tokens, err := textutil.ReadTokenMap(tokensPath, 0)
	if err != nil {
		return nil, err
	}
	dict := make(map[string]bool, len(lex))
	maxLen := 1
	for word := range lex {
		dict[word] = true
		if n := len([]rune(word)); n > maxLen {
			maxLen = n
		}
	}
	return &ZH{lexicon: lex, tokens: tokens, dict: dict, maxWordLen: maxLen}, nil
}

var zhPunctNormalize = map[string]string{
	":": "，", "、": "，", ";": "，", "：": "，", "；": "，",
	".": "。", "?": "？", "!": "！",
}

// Tokenize normalizes punctuation, segments, collapses punctuation/space
// runs, and maps each resulting word to token ids.
func (z *ZH) Tokenize(text string) []int64 {
	text = normalizeZHPunctuation(text)
	words := z.segment(text)
	words = collapseRuns(words)

	var ids []int64
	for _, w := range words {
		ids = append(ids, z.wordToIDs(w)...)
	}
	return ids
}

func normalizeZHPunctuation(text string) string {
	var b strings.Builder
	for _, ch := range textutil.Chars(text) {
		if repl, ok := zhPunctNormalize[ch]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteString(ch)
	}
	return b.String()
}

// segment performs forward maximum-match word segmentation over z.dict.
func (z *ZH) segment(text string) []string {
	runes := []rune(text)
	var words []string
	for i := 0; i < len(runes); {
		matched := false
		upper := z.maxWordLen
		if i+upper > len(runes) {
			upper = len(runes) - i
		}
		for l := upper; l >= 2; l-- {
			cand := string(runes[i : i+l])
			if z.dict[strings.ToLower(cand)] {
				words = append(words, cand)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			words = append(words, string(runes[i]))
			i++
		}
	}
	return words
}

func isSpaceOrPunct(w string) bool {
	return w == " " || w == "\t" || w == "\n" || textutil.IsPunctuation(w)
}

// collapseRuns collapses consecutive whitespace/punctuation words down to
// the first one in each run.
func collapseRuns(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if isSpaceOrPunct(w) && len(out) > 0 && isSpaceOrPunct(out[len(out)-1]) {
			continue
		}
		out = append(out, w)
	}
	return out
}

var zhPhonemeFallback = map[string]string{
	"shei2": "she2",
	"hm":    "hm1",
}

// phonemeID maps one phoneme symbol to a token id, applying a static
// fallback table and then a strip-tone/assume-tone-1 heuristic when the
// symbol itself is not in the vocabulary.
func (z *ZH) phonemeID(p string) (int64, bool) {
	if id, ok := z.tokens[p]; ok {
		return id, true
	}
	if alt, ok := zhPhonemeFallback[p]; ok {
		if id, ok := z.tokens[alt]; ok {
			return id, true
		}
	}
	if stripped := strings.TrimRight(p, "012345"); stripped != p {
		if id, ok := z.tokens[stripped]; ok {
			return id, true
		}
	}
	if id, ok := z.tokens[p+"1"]; ok {
		return id, true
	}
	return 0, false
}

// wordToIDs resolves one segmented word to token ids via the lookup chain
// described in the Matcha-ZH phonemizer rules.
func (z *ZH) wordToIDs(word string) []int64 {
	lower := strings.ToLower(word)
	if phones, ok := z.lexicon[lower]; ok {
		ids := make([]int64, 0, len(phones))
		for _, p := range phones {
			if id, ok := z.phonemeID(p); ok {
				ids = append(ids, id)
			}
		}
		return ids
	}
	if id, ok := z.tokens[word]; ok {
		return []int64{id}
	}
	if textutil.IsPunctuation(word) {
		if ascii, ok := textutil.FullWidthToASCII(word); ok {
			if id, ok := z.tokens[ascii]; ok {
				return []int64{id}
			}
		}
		for _, fallback := range []string{"sil", "sp", "<eps>"} {
			if id, ok := z.tokens[fallback]; ok {
				return []int64{id}
			}
		}
		return nil
	}
	if len([]rune(word)) > 1 {
		var ids []int64
		for _, ch := range textutil.Chars(word) {
			ids = append(ids, z.wordToIDs(ch)...)
		}
		return ids
	}
	return nil
}
