package tts

import (
	"strings"
	"testing"

	"tts/internal/backend"
)

func TestEngineConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     EngineConfig
		wantErr bool
	}{
		{"valid", EngineConfig{Backend: BackendKokoro, ModelDir: "x", SpeechRate: 1}, false},
		{"missing backend", EngineConfig{ModelDir: "x", SpeechRate: 1}, true},
		{"missing model dir", EngineConfig{Backend: BackendKokoro, SpeechRate: 1}, true},
		{"zero speech rate", EngineConfig{Backend: BackendKokoro, ModelDir: "x", SpeechRate: 0}, true},
		{"negative speech rate", EngineConfig{Backend: BackendKokoro, ModelDir: "x", SpeechRate: -1}, true},
		{"negative speaker id", EngineConfig{Backend: BackendKokoro, ModelDir: "x", SpeechRate: 1, SpeakerID: -1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestAvailableAndSupportedBackends(t *testing.T) {
	for _, k := range SupportedBackends() {
		if !Available(k) {
			t.Fatalf("Available(%s) = false, want true", k)
		}
	}
	if Available(BackendKind("nonexistent")) {
		t.Fatalf("Available(nonexistent) = true, want false")
	}
}

func TestNewRejectsInvalidConfigBeforeTouchingBackend(t *testing.T) {
	_, err := New(EngineConfig{})
	if err == nil {
		t.Fatalf("New(empty config) succeeded, want error")
	}
}

// fakeBackend lets StreamingCall/Call event-ordering be tested without an
// ONNX runtime.
type fakeBackend struct {
	samples []float32
	rate    int
	failErr error
}

func (f *fakeBackend) Initialize(backend.Config) error { return nil }
func (f *fakeBackend) Synthesize(string) (backend.Result, error) {
	if f.failErr != nil {
		return backend.Result{}, f.failErr
	}
	return backend.Result{Samples: f.samples, SampleRate: f.rate}, nil
}
func (f *fakeBackend) SetSpeed(float32) {}
func (f *fakeBackend) SetSpeaker(int)   {}
func (f *fakeBackend) Shutdown() error  { return nil }

func TestStreamingCallFiresOpenEventCompleteClose(t *testing.T) {
	e := &Engine{backend: &fakeBackend{samples: []float32{0.1, 0.2}, rate: 24000}}

	var order []string
	e.StreamingCall("hi", StreamEvents{
		OnOpen:     func() { order = append(order, "open") },
		OnEvent:    func(SynthesisResult) { order = append(order, "event") },
		OnComplete: func() { order = append(order, "complete") },
		OnError:    func(ErrorInfo) { order = append(order, "error") },
		OnClose:    func() { order = append(order, "close") },
	})

	want := []string{"open", "event", "complete", "close"}
	if len(order) != len(want) {
		t.Fatalf("event order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("event order = %v, want %v", order, want)
		}
	}
}

func TestStreamingCallFiresErrorNotCompleteOnFailure(t *testing.T) {
	e := &Engine{backend: &fakeBackend{failErr: &backend.Error{Kind: backend.ErrSynthesisFailed, Message: "boom"}}}

	var order []string
	e.StreamingCall("hi", StreamEvents{
		OnEvent:    func(SynthesisResult) { order = append(order, "event") },
		OnComplete: func() { order = append(order, "complete") },
		OnError:    func(ErrorInfo) { order = append(order, "error") },
		OnClose:    func() { order = append(order, "close") },
	})

	want := []string{"event", "error", "close"}
	if len(order) != len(want) {
		t.Fatalf("event order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("event order = %v, want %v", order, want)
		}
	}
}

func TestCallWrapsBackendErrorKind(t *testing.T) {
	e := &Engine{backend: &fakeBackend{failErr: &backend.Error{Kind: backend.ErrSynthesisFailed, Message: "boom", Detail: "onnx exploded"}}}
	result := e.Call("hi")
	if result.Success {
		t.Fatalf("Call succeeded, want failure")
	}
	if result.Error.Kind != ErrSynthesisFailed {
		t.Fatalf("Error.Kind = %v, want %v", result.Error.Kind, ErrSynthesisFailed)
	}
}

func TestSetSpeedRejectsNonPositive(t *testing.T) {
	e := &Engine{backend: &fakeBackend{}}
	if err := e.SetSpeed(0); err == nil {
		t.Fatalf("SetSpeed(0) succeeded, want error")
	}
	if err := e.SetSpeed(1.5); err != nil {
		t.Fatalf("SetSpeed(1.5) = %v, want nil", err)
	}
}

func TestSetSpeakerRejectsNegative(t *testing.T) {
	e := &Engine{backend: &fakeBackend{}}
	if err := e.SetSpeaker(-1); err == nil {
		t.Fatalf("SetSpeaker(-1) succeeded, want error")
	}
}

func TestCallToFileWritesWav(t *testing.T) {
	e := &Engine{backend: &fakeBackend{samples: []float32{0.1, -0.2, 0.3}, rate: 22050}}
	path := t.TempDir() + "/out.wav"
	result := e.CallToFile("hi", path)
	if !result.Success {
		t.Fatalf("CallToFile failed: %+v", result.Error)
	}
}

func TestCallRejectsEmptyAndWhitespaceOnlyText(t *testing.T) {
	e := &Engine{backend: &fakeBackend{samples: []float32{0.1}, rate: 24000}}
	for _, text := range []string{"", "   ", "\t\n"} {
		result := e.Call(text)
		if result.Success {
			t.Fatalf("Call(%q) succeeded, want InvalidText", text)
		}
		if result.Error.Kind != ErrInvalidText {
			t.Fatalf("Call(%q).Error.Kind = %v, want %v", text, result.Error.Kind, ErrInvalidText)
		}
	}
}

func TestCallRejectsTextPastConfiguredLimit(t *testing.T) {
	e := &Engine{backend: &fakeBackend{samples: []float32{0.1}, rate: 24000}, cfg: EngineConfig{MaxTextLength: 5}}
	result := e.Call("this text is far longer than five runes")
	if result.Success {
		t.Fatalf("Call succeeded, want TextTooLong")
	}
	if result.Error.Kind != ErrTextTooLong {
		t.Fatalf("Error.Kind = %v, want %v", result.Error.Kind, ErrTextTooLong)
	}
}

func TestCallUsesDefaultLimitWhenUnconfigured(t *testing.T) {
	e := &Engine{backend: &fakeBackend{samples: []float32{0.1}, rate: 24000}}
	short := e.Call("hello world")
	if !short.Success {
		t.Fatalf("Call(short text) failed: %+v", short.Error)
	}
	over := strings.Repeat("a", defaultMaxTextLength+1)
	long := e.Call(over)
	if long.Success || long.Error.Kind != ErrTextTooLong {
		t.Fatalf("Call(over-limit text) = %+v, want TextTooLong", long)
	}
}

func TestEmptyAudioChunkDurationIsZero(t *testing.T) {
	c := AudioChunk{}
	if c.DurationMs() != 0 {
		t.Fatalf("DurationMs() of empty chunk = %v, want 0", c.DurationMs())
	}
}
