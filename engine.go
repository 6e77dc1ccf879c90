package tts

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"tts/internal/backend"
	"tts/internal/wavio"
)

// defaultMaxTextLength bounds input length when EngineConfig.MaxTextLength
// is left at its zero value.
const defaultMaxTextLength = 4000

// Engine is the synthesis façade: it holds exactly one backend instance and
// exposes blocking and pseudo-streaming calls over it.
type Engine struct {
	mu      sync.Mutex
	cfg     EngineConfig
	backend backend.Backend
}

// New validates cfg, constructs the matching backend, and initializes it.
func New(cfg EngineConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b, err := newBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	if err := b.Initialize(backend.Config{
		ModelDir:          cfg.ModelDir,
		Voice:             cfg.Voice,
		SpeakerID:         cfg.SpeakerID,
		SpeechRate:        cfg.SpeechRate,
		Pitch:             cfg.Pitch,
		OutputSampleRate:  cfg.OutputSampleRate,
		TargetRMS:         cfg.TargetRMS,
		CompressionRatio:  cfg.CompressionRatio,
		CompressionThresh: cfg.CompressionThresh,
		UseRMSNorm:        cfg.UseRMSNorm,
		RemoveClicks:      cfg.RemoveClicks,
		InferenceThreads:  cfg.InferenceThreads,
		Warmup:            cfg.Warmup,
	}); err != nil {
		return nil, asEngineError(err)
	}

	return &Engine{cfg: cfg, backend: b}, nil
}

// Call runs a full synthesis and returns an owned result.
func (e *Engine) Call(text string) SynthesisResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	requestID := uuid.NewString()

	if strings.TrimSpace(text) == "" {
		return errResult(requestID, ErrInvalidText, "text must not be empty or whitespace-only", nil)
	}
	limit := e.cfg.MaxTextLength
	if limit <= 0 {
		limit = defaultMaxTextLength
	}
	if n := utf8.RuneCountInString(text); n > limit {
		return errResult(requestID, ErrTextTooLong, fmt.Sprintf("text length %d exceeds limit %d", n, limit), nil)
	}

	start := time.Now()

	result, err := e.backend.Synthesize(text)
	processingMs := float64(time.Since(start).Microseconds()) / 1000

	if err != nil {
		if eerr, ok := asEngineError(err).(*engineError); ok {
			info := eerr.Info()
			return errResult(requestID, info.Kind, info.Message, fmt.Errorf("%s", info.Detail))
		}
		return errResult(requestID, ErrSynthesisFailed, "synthesis failed", err)
	}

	chunk := AudioChunk{
		Samples:    result.Samples,
		SampleRate: result.SampleRate,
		Channels:   1,
		IsFinal:    true,
		Timestamp:  time.Now(),
	}
	return okResult(requestID, chunk, nil, processingMs)
}

// CallToFile runs Call and writes the resulting audio to a canonical PCM16
// mono WAV file.
func (e *Engine) CallToFile(text, path string) SynthesisResult {
	result := e.Call(text)
	if !result.Success {
		return result
	}
	if err := wavio.WriteFile(path, result.Audio.Samples, result.Audio.SampleRate); err != nil {
		return errResult(result.RequestID, ErrFileWriteFailed, "failed to write wav file", err)
	}
	return result
}

// StreamEvents groups the callbacks StreamingCall fires.
type StreamEvents struct {
	OnOpen     func()
	OnEvent    func(SynthesisResult)
	OnComplete func()
	OnError    func(ErrorInfo)
	OnClose    func()
}

// StreamingCall is a degenerate streaming wrapper: it fires OnOpen, runs one
// full synthesis, fires OnEvent with the single result, then OnComplete (or
// OnError on failure), then always OnClose. No partial/suspended progress is
// ever emitted.
func (e *Engine) StreamingCall(text string, events StreamEvents) {
	if events.OnOpen != nil {
		events.OnOpen()
	}

	result := e.Call(text)
	if events.OnEvent != nil {
		events.OnEvent(result)
	}

	if result.Success {
		if events.OnComplete != nil {
			events.OnComplete()
		}
	} else if events.OnError != nil {
		events.OnError(result.Error)
	}

	if events.OnClose != nil {
		events.OnClose()
	}
}

// SetSpeed mutates the config snapshot and delegates to the backend.
func (e *Engine) SetSpeed(rate float32) error {
	if rate <= 0 {
		return &engineError{kind: ErrInvalidConfig, message: fmt.Sprintf("speech rate must be > 0, got %v", rate)}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.SpeechRate = rate
	e.backend.SetSpeed(rate)
	return nil
}

// SetSpeaker mutates the config snapshot and delegates to the backend.
func (e *Engine) SetSpeaker(id int) error {
	if id < 0 {
		return &engineError{kind: ErrInvalidConfig, message: fmt.Sprintf("speaker id must be >= 0, got %d", id)}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.SpeakerID = id
	e.backend.SetSpeaker(id)
	return nil
}

// Shutdown releases the backend's sessions. The Engine must not be used
// afterward.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.backend.Shutdown()
}
