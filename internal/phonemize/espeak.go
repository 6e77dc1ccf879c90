package phonemize

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"sync"
)

// espeakOnce/espeakAvailable cache the one-shot availability probe: the
// utility's presence is checked once per process, not once per call,
// following the teacher's sync.Once singleton-init pattern for process-wide
// external resources.
var (
	espeakOnce      sync.Once
	espeakAvailable bool
)

// EspeakAvailable probes for the external IPA phonemizer with a no-op
// (single-space) input, matching the invocation English/bilingual init uses
// to decide whether to fail fast.
func EspeakAvailable() bool {
	espeakOnce.Do(func() {
		cmd := exec.Command("espeak-ng", "--ipa=3", "-q", "-v", "en-us")
		cmd.Stdin = strings.NewReader(" ")
		espeakAvailable = cmd.Run() == nil
	})
	return espeakAvailable
}

// ToIPA shells out to the external phonemizer, sending text on stdin and
// reading raw IPA (espeak's "--ipa=3" format) from stdout.
func ToIPA(text string) (string, error) {
	cmd := exec.Command("espeak-ng", "--ipa=3", "-q", "-v", "en-us")
	cmd.Stdin = strings.NewReader(text)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("phonemize: espeak-ng: %w", err)
	}
	return out.String(), nil
}

var spaceRunRE = regexp.MustCompile(`\s+`)

// cleanIPA strips zero-width joiners and newlines and collapses whitespace
// runs, matching the raw-output cleanup step before the Gruut-US rewrite.
func cleanIPA(s string) string {
	s = strings.ReplaceAll(s, "‍", "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = spaceRunRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// gruutReplacements is applied in order: r-colored vowel expansion,
// diphthong collapse, affricate collapse, then the g/r normalization to
// their IPA code points (U+0261, U+0279).
var gruutReplacements = []struct{ from, to string }{
	{"ɝ", "ɜɹ"},
	{"ɚ", "əɹ"},
	{"eɪ", "A"},
	{"aɪ", "I"},
	{"ɔɪ", "Y"},
	{"oʊ", "O"},
	{"aʊ", "W"},
	{"tʃ", "ʧ"},
	{"dʒ", "ʤ"},
	{"g", "ɡ"},
	{"r", "ɹ"},
}

// gruutUSRewrite applies the Gruut-US IPA flavoring the Matcha-EN and
// Kokoro acoustic models were trained on.
func gruutUSRewrite(ipa string) string {
	s := strings.ReplaceAll(ipa, "‍", "")
	for _, r := range gruutReplacements {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	return s
}
