package backend

import (
	"fmt"
	"path/filepath"

	"tts/internal/phonemize"
)

// New constructs the concrete backend for kind. Reserved/unknown kinds
// return a nil Backend and ErrInvalidConfig, per spec.md §4.9.
func New(kind Kind) (Backend, error) {
	switch kind {
	case KindMatchaZH:
		return newMatcha("matcha-zh", buildZHTokenizer, true, false), nil
	case KindMatchaEN:
		return newMatcha("matcha-en", buildENTokenizer, true, true), nil
	case KindMatchaZHEN:
		return newMatcha("matcha-zh-en", buildZHENTokenizer, false, true), nil
	case KindKokoro:
		return newKokoro(), nil
	default:
		return nil, newError(ErrInvalidConfig, fmt.Sprintf("backend: unsupported kind %q", kind), nil)
	}
}

// Available reports whether kind names a supported backend.
func Available(kind Kind) bool {
	switch kind {
	case KindMatchaZH, KindMatchaEN, KindMatchaZHEN, KindKokoro:
		return true
	default:
		return false
	}
}

// SupportedKinds lists every backend kind the factory can construct.
func SupportedKinds() []Kind {
	return []Kind{KindMatchaZH, KindMatchaEN, KindMatchaZHEN, KindKokoro}
}

func buildZHTokenizer(modelDir string) (tokenizeFunc, error) {
	zh, err := phonemize.NewZH(filepath.Join(modelDir, "lexicon.txt"), filepath.Join(modelDir, "tokens.txt"))
	if err != nil {
		return nil, err
	}
	return func(text string) ([]int64, error) {
		return zh.Tokenize(text), nil
	}, nil
}

func buildENTokenizer(modelDir string) (tokenizeFunc, error) {
	en, err := phonemize.NewEN(filepath.Join(modelDir, "tokens.txt"))
	if err != nil {
		return nil, err
	}
	return en.Tokenize, nil
}

func buildZHENTokenizer(modelDir string) (tokenizeFunc, error) {
	zhen, err := phonemize.NewZHEN(filepath.Join(modelDir, "vocab_tts.txt"))
	if err != nil {
		return nil, err
	}
	return func(text string) ([]int64, error) {
		return zhen.Tokenize(text), nil
	}, nil
}
