package textutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadTokenMapPairFormat(t *testing.T) {
	path := writeTemp(t, "vocab.txt", "<blank> 0\nni3 1\nhao3 2\n")
	tokens, err := ReadTokenMap(path, 0)
	if err != nil {
		t.Fatalf("ReadTokenMap: %v", err)
	}
	want := TokenMap{"<blank>": 0, "ni3": 1, "hao3": 2}
	for k, v := range want {
		if tokens[k] != v {
			t.Errorf("tokens[%q] = %d, want %d", k, tokens[k], v)
		}
	}
}

func TestReadTokenMapLineNumberFormat(t *testing.T) {
	path := writeTemp(t, "vocab.txt", "a\nb\n \nc\n")
	tokens, err := ReadTokenMap(path, 0)
	if err != nil {
		t.Fatalf("ReadTokenMap: %v", err)
	}
	if tokens["a"] != 0 || tokens["b"] != 1 || tokens[" "] != 2 || tokens["c"] != 3 {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestReadTokenMapOneIndexed(t *testing.T) {
	path := writeTemp(t, "vocab.txt", "a\nb\n")
	tokens, err := ReadTokenMap(path, 1)
	if err != nil {
		t.Fatalf("ReadTokenMap: %v", err)
	}
	if tokens["a"] != 1 || tokens["b"] != 2 {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestReadLexicon(t *testing.T) {
	path := writeTemp(t, "lexicon.txt", ";;; comment\nHELLO HH AH0 L OW1\n# also comment\nWORLD W ER1 L D\n")
	lex, err := ReadLexicon(path)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	if got := lex["HELLO"]; len(got) != 4 || got[0] != "HH" {
		t.Fatalf("lex[HELLO] = %v", got)
	}
	if got := lex["WORLD"]; len(got) != 4 || got[3] != "D" {
		t.Fatalf("lex[WORLD] = %v", got)
	}
	if _, ok := lex["comment"]; ok {
		t.Error("comment line should not be parsed as a word")
	}
}

func TestReadTokenMapMissingFile(t *testing.T) {
	if _, err := ReadTokenMap(filepath.Join(t.TempDir(), "missing.txt"), 0); err == nil {
		t.Error("expected error for missing file")
	}
}
