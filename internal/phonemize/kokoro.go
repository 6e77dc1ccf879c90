package phonemize

import (
	"strconv"
	"strings"

	"github.com/mozillazg/go-pinyin"

	"tts/internal/textutil"
)

const kokoroMaxTokens = 512

// kokoroVocab is the fixed phoneme vocabulary used for Kokoro tokenization:
// id 0 is both PAD and start/end, the rest are IPA segments, Chinese
// tone-arrow glyphs, punctuation, digits, and Latin letters. It holds 90
// symbols whose ids run consecutively from 1 in table order (a repeated
// symbol keeps its first id), not by code point.
var kokoroVocab = buildKokoroVocab()

func buildKokoroVocab() map[string]int64 {
	symbols := []string{
		// vowels
		"a", "e", "i", "o", "u", "ə", "ɚ", "ɛ", "ɜ", "ɪ", "ʊ", "ʌ", "ɔ", "æ", "ɑ", "ɒ", "ø", "y",
		// diphthongs collapsed by the Gruut-US rewrite
		"A", "I", "Y", "O", "W",
		// consonants
		"b", "d", "f", "ɡ", "h", "j", "k", "l", "m", "n", "ŋ", "p", "ɹ", "s", "ʃ", "t", "θ", "ð",
		"v", "w", "z", "ʒ", "ʧ", "ʤ", "ɻ", "x", "ɕ", "ʑ",
		// stress/length marks and punctuation
		"ˈ", "ˌ", "ː", " ", ".", ",", "!", "?", ";", ":", "'", "\"", "-", "(", ")",
		// start/end and reserved sentinel
		"^", "$",
		// Chinese tone arrows
		"→", "↗", "↓", "↘",
		// digits, kept for stray numerals that escape normalization
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		// ascii letters, for any IPA fallback glyph that degrades to Latin
		"c", "q", "r", "u", "á", "é", "í", "ó", "ú",
	}
	vocab := make(map[string]int64, len(symbols)+1)
	var next int64 = 1
	for _, s := range symbols {
		if _, exists := vocab[s]; exists {
			continue
		}
		vocab[s] = next
		next++
	}
	return vocab
}

// kokoroInitials lists pinyin initials longest-first so "zh"/"ch"/"sh" win
// over their single-letter prefixes.
var kokoroInitials = []string{
	"zh", "ch", "sh", "b", "p", "m", "f", "d", "t", "n", "l",
	"g", "k", "h", "j", "q", "x", "r", "z", "c", "s", "y", "w",
}

// kokoroFinals maps a pinyin final (tone digit already stripped) to its IPA
// rendering under the Gruut-US-adjacent flavoring the Kokoro model expects.
var kokoroFinals = map[string]string{
	"a": "a", "o": "o", "e": "ə", "i": "i", "u": "u", "v": "y", "ü": "y",
	"ai": "aɪ", "ei": "eɪ", "ui": "weɪ", "ao": "aʊ", "ou": "oʊ", "iu": "joʊ",
	"ie": "je", "ve": "ɥe", "üe": "ɥe", "er": "ɚ",
	"an": "an", "en": "ən", "in": "in", "un": "wən", "vn": "yn", "ün": "yn",
	"ang": "ɑŋ", "eng": "əŋ", "ing": "iŋ", "ong": "ʊŋ",
	"ia": "ja", "iao": "jaʊ", "ian": "jɛn", "iang": "jɑŋ", "iong": "jʊŋ",
	"ua": "wa", "uai": "waɪ", "uan": "wan", "uang": "wɑŋ", "uo": "wo", "ueng": "wəŋ",
}

var kokoroToneArrow = map[byte]string{
	'1': "→", '2': "↗", '3': "↓", '4': "↘", '5': "",
}

// Kokoro phonemizes text for the Kokoro backend: Chinese runs go through a
// static pinyin-to-IPA table, English runs through the external
// phonemizer plus Gruut-US, digits through Chinese normalization first.
// The result is tokenized one Unicode scalar at a time against the fixed
// vocabulary, unknown scalars silently skipped, padded/truncated to 512.
type Kokoro struct {
	pinyinArgs pinyin.Args
}

func NewKokoro() *Kokoro {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	args.Heteronym = false
	return &Kokoro{pinyinArgs: args}
}

// Tokenize returns the Kokoro token id sequence for text, always starting
// and ending with 0 and never exceeding 512 entries. contentLen is the
// sequence's length before trailing-zero padding (start token + content +
// end token), the length the voice-style row selection is keyed on — unlike
// len(ids), it still varies with the length of the input.
func (k *Kokoro) Tokenize(text string) (ids []int64, contentLen int) {
	ipa := k.toIPA(text)
	content := make([]int64, 0, len(ipa))
	for _, r := range ipa {
		if id, ok := kokoroVocab[string(r)]; ok {
			content = append(content, id)
		}
	}

	maxContent := kokoroMaxTokens - 2
	if len(content) > maxContent {
		content = content[:maxContent]
	}
	ids = make([]int64, 0, len(content)+2)
	ids = append(ids, 0)
	ids = append(ids, content...)
	ids = append(ids, 0)
	contentLen = len(ids)
	for len(ids) < kokoroMaxTokens {
		ids = append(ids, 0)
	}
	return ids, contentLen
}

func (k *Kokoro) toIPA(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			j := i + 1
			for j < len(runes) && isDigitRune(runes[j]) {
				j++
			}
			numText := string(runes[i:j])
			n, err := strconv.ParseInt(numText, 10, 64)
			reading := textutil.DigitByDigitChinese(numText)
			if err == nil {
				reading = textutil.IntToChinese(n)
			}
			b.WriteString(k.pinyinToIPA(reading))
			i = j
		case r >= 0x4E00 && r <= 0x9FFF:
			j := i + 1
			for j < len(runes) && runes[j] >= 0x4E00 && runes[j] <= 0x9FFF {
				j++
			}
			b.WriteString(k.pinyinToIPA(string(runes[i:j])))
			i = j
		case isASCIILetter(r):
			j := i + 1
			for j < len(runes) && isASCIILetter(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			if EspeakAvailable() {
				if raw, err := ToIPA(word); err == nil {
					b.WriteString(gruutUSRewrite(cleanIPA(raw)))
				}
			}
			i = j
		default:
			b.WriteRune(r)
			i++
		}
	}
	return b.String()
}

// pinyinToIPA converts a run of hanzi to its syllable-by-syllable IPA
// reading via the static initial/final tables, with the retroflex/dental
// syllabic-consonant and yu-class special cases and a trailing tone arrow.
func (k *Kokoro) pinyinToIPA(hanzi string) string {
	syllables := pinyin.LazyConvert(hanzi, &k.pinyinArgs)
	var b strings.Builder
	for _, syl := range syllables {
		b.WriteString(syllableToIPA(syl))
	}
	return b.String()
}

func syllableToIPA(syl string) string {
	if syl == "" {
		return ""
	}
	tone := byte('5')
	body := syl
	if last := syl[len(syl)-1]; last >= '1' && last <= '5' {
		tone = last
		body = syl[:len(syl)-1]
	}

	initial := ""
	for _, cand := range kokoroInitials {
		if strings.HasPrefix(body, cand) {
			initial = cand
			break
		}
	}
	final := strings.TrimPrefix(body, initial)

	switch {
	case (initial == "zh" || initial == "ch" || initial == "sh" || initial == "r") && final == "i":
		return "ɻ" + kokoroToneArrow[tone]
	case (initial == "z" || initial == "c" || initial == "s") && final == "i":
		return "ɹ" + kokoroToneArrow[tone]
	}
	if (initial == "j" || initial == "q" || initial == "x") && strings.HasPrefix(final, "u") {
		final = "v" + strings.TrimPrefix(final, "u")
	}

	ipaInitial := initial
	ipaFinal, ok := kokoroFinals[final]
	if !ok {
		ipaFinal = final
	}
	return ipaInitial + ipaFinal + kokoroToneArrow[tone]
}
