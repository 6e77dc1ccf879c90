package phonemize

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestZHTokenizeLexiconLookup(t *testing.T) {
	lexPath := writeTestFile(t, "lexicon.txt", "你好 ni3 hao3\n")
	tokensPath := writeTestFile(t, "tokens.txt", "<eps> 0\nni3 1\nhao3 2\nsp 3\n")

	z, err := NewZH(lexPath, tokensPath)
	if err != nil {
		t.Fatalf("NewZH: %v", err)
	}
	ids := z.Tokenize("你好")
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("Tokenize(你好) = %v, want [1 2]", ids)
	}
}

func TestZHTokenizeFallsBackToCharacters(t *testing.T) {
	lexPath := writeTestFile(t, "lexicon.txt", "你好 ni3 hao3\n")
	tokensPath := writeTestFile(t, "tokens.txt", "<eps> 0\nni3 1\nhao3 2\n世 3\n界 4\n")

	z, err := NewZH(lexPath, tokensPath)
	if err != nil {
		t.Fatalf("NewZH: %v", err)
	}
	ids := z.Tokenize("世界")
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 4 {
		t.Fatalf("Tokenize(世界) = %v, want [3 4]", ids)
	}
}

func TestZHPunctuationFallback(t *testing.T) {
	lexPath := writeTestFile(t, "lexicon.txt", "")
	tokensPath := writeTestFile(t, "tokens.txt", "sil 0\n, 1\n")

	z, err := NewZH(lexPath, tokensPath)
	if err != nil {
		t.Fatalf("NewZH: %v", err)
	}
	ids := z.Tokenize("，")
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("Tokenize(，) = %v, want [1] (ascii comma token)", ids)
	}
}

func TestZHPhonemeFallbackHeuristics(t *testing.T) {
	z := &ZH{tokens: map[string]int64{"she2": 7, "hm1": 8}}
	if id, ok := z.phonemeID("shei2"); !ok || id != 7 {
		t.Errorf("phonemeID(shei2) = %d,%v want 7,true", id, ok)
	}
	if id, ok := z.phonemeID("hm"); !ok || id != 8 {
		t.Errorf("phonemeID(hm) = %d,%v want 8,true", id, ok)
	}
}
