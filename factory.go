package tts

import "tts/internal/backend"

func toBackendKind(k BackendKind) backend.Kind {
	return backend.Kind(k)
}

// Available reports whether kind names a backend the factory can construct.
func Available(kind BackendKind) bool {
	return backend.Available(toBackendKind(kind))
}

// SupportedBackends lists every backend kind New can construct.
func SupportedBackends() []BackendKind {
	kinds := backend.SupportedKinds()
	out := make([]BackendKind, len(kinds))
	for i, k := range kinds {
		out[i] = BackendKind(k)
	}
	return out
}

func newBackend(kind BackendKind) (backend.Backend, error) {
	b, err := backend.New(toBackendKind(kind))
	if err != nil {
		return nil, asEngineError(err)
	}
	return b, nil
}

func asEngineError(err error) error {
	if berr, ok := err.(*backend.Error); ok {
		return &engineError{kind: ErrorKind(berr.Kind), message: berr.Message, detail: berr.Detail}
	}
	return err
}

type engineError struct {
	kind    ErrorKind
	message string
	detail  string
}

func (e *engineError) Error() string {
	if e.detail != "" {
		return e.message + ": " + e.detail
	}
	return e.message
}

func (e *engineError) Info() ErrorInfo {
	return ErrorInfo{Kind: e.kind, Message: e.message, Detail: e.detail}
}
