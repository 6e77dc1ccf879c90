// Package backend implements the neural acoustic backends: the shared
// Matcha (acoustic-model + Vocos-vocoder + ISTFT) pipeline used by the
// Chinese, English, and bilingual variants, and the single-session Kokoro
// end-to-end backend. Every backend is a blocking, mutex-serialized session
// wrapper around github.com/yalue/onnxruntime_go.
package backend

// Kind identifies a concrete backend implementation. It mirrors
// tts.BackendKind's string values and assets.Kind's values without
// importing either (the root tts package imports this one).
type Kind string

const (
	KindMatchaZH   Kind = "matcha-zh"
	KindMatchaEN   Kind = "matcha-en"
	KindMatchaZHEN Kind = "matcha-zh-en"
	KindKokoro     Kind = "kokoro"
)

// Config carries everything a backend needs to initialize, mirroring
// tts.EngineConfig's synthesis-relevant fields.
type Config struct {
	ModelDir          string
	Voice             string
	SpeakerID         int
	SpeechRate        float32
	Pitch             float32
	OutputSampleRate  int
	TargetRMS         float32
	CompressionRatio  float32
	CompressionThresh float32
	UseRMSNorm        bool
	RemoveClicks      bool
	InferenceThreads  int
	Warmup            bool
}

// Result is the raw synthesis output: post-processed mono float32 samples
// at the backend's resolved output sample rate.
type Result struct {
	Samples    []float32
	SampleRate int
}

// ErrorKind mirrors tts.ErrorKind's values relevant to backend failures.
type ErrorKind string

const (
	ErrNone            ErrorKind = ""
	ErrInvalidConfig   ErrorKind = "InvalidConfig"
	ErrModelNotFound   ErrorKind = "ModelNotFound"
	ErrNotInitialized  ErrorKind = "NotInitialized"
	ErrAlreadyStarted  ErrorKind = "AlreadyStarted"
	ErrSynthesisFailed ErrorKind = "SynthesisFailed"
	ErrInternal        ErrorKind = "InternalError"
)

// Error carries a (kind, message, detail) triple, matching spec.md §7's
// propagation policy.
type Error struct {
	Kind    ErrorKind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func newError(kind ErrorKind, message string, detail error) *Error {
	e := &Error{Kind: kind, Message: message}
	if detail != nil {
		e.Detail = detail.Error()
	}
	return e
}

// Backend is the contract every concrete acoustic backend implements.
type Backend interface {
	Initialize(cfg Config) error
	Synthesize(text string) (Result, error)
	SetSpeed(rate float32)
	SetSpeaker(id int)
	Shutdown() error
}
