package backend

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"tts/internal/dsp"
	"tts/internal/phonemize"
	"tts/internal/voice"
)

const kokoroSampleRate = 24000

// kokoro is the single-session end-to-end backend: no ISTFT, no blank
// insertion, speed passed to the graph as its reciprocal.
type kokoro struct {
	mu          sync.Mutex
	session     *ort.DynamicAdvancedSession
	tokenizer   *phonemize.Kokoro
	style       *voice.Style
	initialized bool

	speechRate float32
	speakerID  int
	cfg        Config
}

func newKokoro() *kokoro {
	return &kokoro{tokenizer: phonemize.NewKokoro(), speechRate: 1.0}
}

func (k *kokoro) Initialize(cfg Config) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.initialized {
		return newError(ErrAlreadyStarted, "kokoro: already initialized", nil)
	}
	if cfg.ModelDir == "" {
		return newError(ErrInvalidConfig, "kokoro: model directory required", nil)
	}

	if err := ensureONNXRuntime(); err != nil {
		return newError(ErrInternal, "kokoro: onnx runtime init failed", err)
	}

	modelPath := filepath.Join(cfg.ModelDir, "kokoro-v1.0.onnx")
	inputs, outputs, err := sessionNames(modelPath)
	if err != nil {
		return newError(ErrModelNotFound, "kokoro: model not found", err)
	}
	if err := requireNames("kokoro", modelPath, []string{"input_ids", "style", "speed"}, inputs); err != nil {
		return newError(ErrModelNotFound, "kokoro: graph mismatch", err)
	}
	if err := requireNames("kokoro", modelPath, []string{"waveform"}, outputs); err != nil {
		return newError(ErrModelNotFound, "kokoro: graph mismatch", err)
	}

	session, err := newSession(modelPath, inputs, outputs, cfg.InferenceThreads)
	if err != nil {
		return newError(ErrModelNotFound, "kokoro: session failed", err)
	}

	voicePath := filepath.Join(cfg.ModelDir, "voices", cfg.Voice+".bin")
	style, err := voice.Load(voicePath)
	if err != nil {
		session.Destroy()
		return newError(ErrModelNotFound, "kokoro: voice file load failed", err)
	}

	k.session = session
	k.style = style
	k.cfg = cfg
	k.speakerID = cfg.SpeakerID
	if cfg.SpeechRate > 0 {
		k.speechRate = cfg.SpeechRate
	}
	k.initialized = true

	if cfg.Warmup {
		k.mu.Unlock()
		if _, err := k.Synthesize("warmup"); err != nil {
			// Warmup failures are non-fatal.
		}
		k.mu.Lock()
	}
	return nil
}

func (k *kokoro) SetSpeed(rate float32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if rate > 0 {
		k.speechRate = rate
	}
}

func (k *kokoro) SetSpeaker(id int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.speakerID = id
}

func (k *kokoro) Shutdown() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.session != nil {
		k.session.Destroy()
		k.session = nil
	}
	k.initialized = false
	return nil
}

func (k *kokoro) Synthesize(text string) (Result, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.initialized {
		return Result{}, newError(ErrNotInitialized, "kokoro: not initialized", nil)
	}

	tokens, contentLen := k.tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return Result{SampleRate: kokoroSampleRate}, nil
	}

	styleRow := k.style.RowFor(contentLen)

	idsTensor, err := int64Tensor([]int64{1, int64(len(tokens))}, tokens)
	if err != nil {
		return Result{}, newError(ErrSynthesisFailed, "kokoro: tensor build failed", err)
	}
	defer idsTensor.Destroy()

	styleTensor, err := float32Tensor([]int64{1, int64(len(styleRow))}, styleRow)
	if err != nil {
		return Result{}, newError(ErrSynthesisFailed, "kokoro: tensor build failed", err)
	}
	defer styleTensor.Destroy()

	// Kokoro's graph expects the reciprocal of the speech rate.
	speedTensor, err := float32Tensor([]int64{1}, []float32{1 / k.speechRate})
	if err != nil {
		return Result{}, newError(ErrSynthesisFailed, "kokoro: tensor build failed", err)
	}
	defer speedTensor.Destroy()

	outputs := []ort.Value{nil}
	if err := k.session.Run([]ort.Value{idsTensor, styleTensor, speedTensor}, outputs); err != nil {
		return Result{}, newError(ErrSynthesisFailed, "kokoro: inference failed", err)
	}
	defer destroyAll(outputs...)

	waveTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return Result{}, newError(ErrSynthesisFailed, "kokoro: unexpected output type", fmt.Errorf("waveform is not float32"))
	}

	waveform := append([]float32(nil), waveTensor.GetData()...)
	waveform = dsp.PostProcess(waveform, dsp.PostProcessConfig{
		CompressionThreshold: k.cfg.CompressionThresh,
		CompressionRatio:     k.cfg.CompressionRatio,
		UseRMSNorm:           k.cfg.UseRMSNorm,
		TargetRMS:            k.cfg.TargetRMS,
		RemoveClicks:         k.cfg.RemoveClicks,
	})

	return Result{Samples: waveform, SampleRate: kokoroSampleRate}, nil
}
