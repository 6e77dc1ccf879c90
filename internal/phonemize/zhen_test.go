package phonemize

import "testing"

func TestZHENDigitRunUsesChineseReading(t *testing.T) {
	tokensPath := writeTestFile(t, "vocab_tts.txt", "<unk> 1\ner4 2\nling2 3\nyi1 4\n")
	z, err := NewZHEN(tokensPath)
	if err != nil {
		t.Fatalf("NewZHEN: %v", err)
	}
	// "2" -> 二 -> pinyin "er4".
	ids := z.Tokenize("2")
	if len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("Tokenize(2) = %v, want [2] (er4)", ids)
	}
}

func TestZHENUnknownMapsToOne(t *testing.T) {
	tokensPath := writeTestFile(t, "vocab_tts.txt", "<unk> 1\n")
	z, err := NewZHEN(tokensPath)
	if err != nil {
		t.Fatalf("NewZHEN: %v", err)
	}
	ids := z.Tokenize("@")
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("Tokenize(@) = %v, want [1]", ids)
	}
}

func TestZHENRomanNumeralRoutesToNumericPath(t *testing.T) {
	tokensPath := writeTestFile(t, "vocab_tts.txt", "<unk> 1\nsi4 2\n")
	z, err := NewZHEN(tokensPath)
	if err != nil {
		t.Fatalf("NewZHEN: %v", err)
	}
	// "IV" -> 4 -> 四 -> pinyin "si4".
	ids := z.Tokenize("IV")
	if len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("Tokenize(IV) = %v, want [2] (si4)", ids)
	}
}

func TestZHENNoBlankTokensInserted(t *testing.T) {
	tokensPath := writeTestFile(t, "vocab_tts.txt", "<unk> 1\nni3 2\nhao3 3\n")
	z, err := NewZHEN(tokensPath)
	if err != nil {
		t.Fatalf("NewZHEN: %v", err)
	}
	ids := z.Tokenize("你好")
	for _, id := range ids {
		if id == 0 {
			t.Fatalf("bilingual backend must never emit blank token 0, got %v", ids)
		}
	}
}
