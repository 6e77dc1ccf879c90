package tts

import "time"

// AudioChunk holds PCM float32 samples in [-1, 1] at a single sample rate,
// always mono.
type AudioChunk struct {
	Samples       []float32
	SampleRate    int
	Channels      int
	IsFinal       bool
	SentenceIndex int
	Timestamp     time.Time
}

// DurationMs returns len(Samples) * 1000 / SampleRate, or 0 for an empty or
// rateless chunk.
func (c AudioChunk) DurationMs() float64 {
	if c.SampleRate == 0 || len(c.Samples) == 0 {
		return 0
	}
	return float64(len(c.Samples)) * 1000 / float64(c.SampleRate)
}

// SentenceTiming marks one sentence's span within the synthesized audio.
type SentenceTiming struct {
	Index   int
	Text    string
	StartMs int64
	EndMs   int64
}

// SynthesisResult is the outcome of one Call.
type SynthesisResult struct {
	RequestID       string
	Audio           AudioChunk
	Sentences       []SentenceTiming
	AudioDurationMs float64
	ProcessingMs    float64
	RTF             float64
	Success         bool
	Error           ErrorInfo
}

// ErrorKind tags the taxonomy spec.md §7 lists.
type ErrorKind string

const (
	ErrNone             ErrorKind = ""
	ErrInvalidConfig    ErrorKind = "InvalidConfig"
	ErrModelNotFound    ErrorKind = "ModelNotFound"
	ErrUnsupportedLang  ErrorKind = "UnsupportedLanguage"
	ErrInvalidText      ErrorKind = "InvalidText"
	ErrTextTooLong      ErrorKind = "TextTooLong"
	ErrNotInitialized   ErrorKind = "NotInitialized"
	ErrAlreadyStarted   ErrorKind = "AlreadyStarted"
	ErrSynthesisFailed  ErrorKind = "SynthesisFailed"
	ErrTimeout          ErrorKind = "Timeout"
	ErrFetchFailed      ErrorKind = "FetchFailed"
	ErrConnectionFailed ErrorKind = "ConnectionFailed"
	ErrAuthFailed       ErrorKind = "AuthenticationFailed"
	ErrInternal         ErrorKind = "InternalError"
	ErrOutOfMemory      ErrorKind = "OutOfMemory"
	ErrFileWriteFailed  ErrorKind = "FileWriteFailed"
)

// ErrorInfo carries a (kind, message, detail) triple. A zero Kind means OK.
type ErrorInfo struct {
	Kind    ErrorKind
	Message string
	Detail  string
}

func okResult(requestID string, chunk AudioChunk, sentences []SentenceTiming, processingMs float64) SynthesisResult {
	audioMs := chunk.DurationMs()
	rtf := 0.0
	if audioMs > 0 {
		rtf = processingMs / audioMs
	}
	return SynthesisResult{
		RequestID:       requestID,
		Audio:           chunk,
		Sentences:       sentences,
		AudioDurationMs: audioMs,
		ProcessingMs:    processingMs,
		RTF:             rtf,
		Success:         true,
	}
}

func errResult(requestID string, kind ErrorKind, message string, detail error) SynthesisResult {
	info := ErrorInfo{Kind: kind, Message: message}
	if detail != nil {
		info.Detail = detail.Error()
	}
	return SynthesisResult{RequestID: requestID, Success: false, Error: info}
}
