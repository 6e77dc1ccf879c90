package backend

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"tts/internal/dsp"
	"tts/internal/phonemize"
)

const (
	defaultNFFT       = 1024
	defaultHop        = 256
	defaultWinLength  = 1024
	defaultNoiseScale = 1.0
	matchaSampleRate  = 22050
)

// tokenizeFunc converts normalized text to acoustic-model token ids. A nil,
// nil result means the text produced no tokens (success, empty audio).
type tokenizeFunc func(text string) ([]int64, error)

// tokenizerFactory builds a tokenizeFunc once the model directory is known,
// since the phonemizer needs to load the bundle's tokens.txt/lexicon.txt.
type tokenizerFactory func(modelDir string) (tokenizeFunc, error)

// matcha is the shared acoustic+vocoder+ISTFT pipeline behind the Chinese,
// English, and bilingual Matcha variants. usesBlank selects whether the
// monolingual blank-insertion step runs; it is always false for the
// bilingual variant.
type matcha struct {
	name        string
	buildTokens tokenizerFactory
	tokenize    tokenizeFunc
	usesBlank   bool
	needsEspeak bool

	mu          sync.Mutex
	acoustic    *ort.DynamicAdvancedSession
	vocoder     *ort.DynamicAdvancedSession
	initialized bool

	padID       int64
	nFFT        int
	hop         int
	winLength   int
	speechRate  float32
	lengthScale float32
	speakerID   int
	cfg         Config
}

func newMatcha(name string, buildTokens tokenizerFactory, usesBlank, needsEspeak bool) *matcha {
	return &matcha{
		name:        name,
		buildTokens: buildTokens,
		usesBlank:   usesBlank,
		needsEspeak: needsEspeak,
		nFFT:        defaultNFFT,
		hop:         defaultHop,
		winLength:   defaultWinLength,
		speechRate:  1.0,
		lengthScale: 1.0,
	}
}

func (m *matcha) Initialize(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return newError(ErrAlreadyStarted, m.name+": already initialized", nil)
	}
	if cfg.ModelDir == "" {
		return newError(ErrInvalidConfig, m.name+": model directory required", nil)
	}
	if m.needsEspeak && !phonemize.EspeakAvailable() {
		return newError(ErrModelNotFound, m.name+": espeak-ng not found on PATH", nil)
	}

	if err := ensureONNXRuntime(); err != nil {
		return newError(ErrInternal, m.name+": onnx runtime init failed", err)
	}

	acousticPath := filepath.Join(cfg.ModelDir, "model-steps-3.onnx")
	vocoderPath := filepath.Join(filepath.Dir(cfg.ModelDir), fmt.Sprintf("vocos-%dkhz-univ.onnx", matchaSampleRate/1000))

	acousticIn, acousticOut, err := sessionNames(acousticPath)
	if err != nil {
		return newError(ErrModelNotFound, m.name+": acoustic model not found", err)
	}
	if err := requireNames(m.name, acousticPath, []string{"x", "x_length", "noise_scale", "length_scale"}, acousticIn); err != nil {
		return newError(ErrModelNotFound, m.name+": acoustic graph mismatch", err)
	}
	if err := requireNames(m.name, acousticPath, []string{"mel"}, acousticOut); err != nil {
		return newError(ErrModelNotFound, m.name+": acoustic graph mismatch", err)
	}

	acoustic, err := newSession(acousticPath, acousticIn, acousticOut, cfg.InferenceThreads)
	if err != nil {
		return newError(ErrModelNotFound, m.name+": acoustic session failed", err)
	}

	vocoderIn, vocoderOut, err := sessionNames(vocoderPath)
	if err != nil {
		acoustic.Destroy()
		return newError(ErrModelNotFound, m.name+": vocoder model not found", err)
	}
	if err := requireNames(m.name, vocoderPath, []string{"mels"}, vocoderIn); err != nil {
		acoustic.Destroy()
		return newError(ErrModelNotFound, m.name+": vocoder graph mismatch", err)
	}
	if err := requireNames(m.name, vocoderPath, []string{"mag", "x", "y"}, vocoderOut); err != nil {
		acoustic.Destroy()
		return newError(ErrModelNotFound, m.name+": vocoder graph mismatch", err)
	}

	vocoder, err := newSession(vocoderPath, vocoderIn, vocoderOut, cfg.InferenceThreads)
	if err != nil {
		acoustic.Destroy()
		return newError(ErrModelNotFound, m.name+": vocoder session failed", err)
	}

	tokenize, err := m.buildTokens(cfg.ModelDir)
	if err != nil {
		acoustic.Destroy()
		vocoder.Destroy()
		return newError(ErrModelNotFound, m.name+": phonemizer load failed", err)
	}
	m.tokenize = tokenize

	m.acoustic = acoustic
	m.vocoder = vocoder
	m.padID = 0
	m.cfg = cfg
	m.speakerID = cfg.SpeakerID
	if cfg.SpeechRate > 0 {
		m.speechRate = cfg.SpeechRate
	}
	m.initialized = true

	if cfg.Warmup {
		m.mu.Unlock()
		if _, err := m.Synthesize("warmup"); err != nil {
			// Warmup failures are non-fatal; the first real call will
			// surface a persistent problem on its own.
		}
		m.mu.Lock()
	}
	return nil
}

func (m *matcha) SetSpeed(rate float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rate > 0 {
		m.speechRate = rate
	}
}

func (m *matcha) SetSpeaker(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speakerID = id
}

func (m *matcha) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.acoustic != nil {
		m.acoustic.Destroy()
		m.acoustic = nil
	}
	if m.vocoder != nil {
		m.vocoder.Destroy()
		m.vocoder = nil
	}
	m.initialized = false
	return nil
}

func (m *matcha) Synthesize(text string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return Result{}, newError(ErrNotInitialized, m.name+": not initialized", nil)
	}

	tokens, err := m.tokenize(text)
	if err != nil {
		return Result{}, newError(ErrSynthesisFailed, m.name+": tokenize failed", err)
	}
	if len(tokens) == 0 {
		return Result{SampleRate: matchaSampleRate}, nil
	}
	if m.usesBlank {
		tokens = phonemize.AddBlank(tokens, m.padID)
	}

	mel, melDim, frames, err := m.runAcoustic(tokens)
	if err != nil {
		return Result{}, newError(ErrSynthesisFailed, m.name+": acoustic inference failed", err)
	}
	if frames == 0 {
		return Result{SampleRate: matchaSampleRate}, nil
	}

	real, imag, err := m.runVocoder(mel, melDim, frames)
	if err != nil {
		return Result{}, newError(ErrSynthesisFailed, m.name+": vocoder inference failed", err)
	}

	waveform64 := dsp.ISTFT(real, imag, m.nFFT, m.hop, m.winLength)
	waveform := make([]float32, len(waveform64))
	for i, v := range waveform64 {
		waveform[i] = float32(v)
	}

	outRate := matchaSampleRate
	if m.cfg.OutputSampleRate > 0 && m.cfg.OutputSampleRate != matchaSampleRate {
		waveform = dsp.Resample(waveform, matchaSampleRate, m.cfg.OutputSampleRate)
		outRate = m.cfg.OutputSampleRate
	}

	waveform = dsp.PostProcess(waveform, dsp.PostProcessConfig{
		CompressionThreshold: m.cfg.CompressionThresh,
		CompressionRatio:     m.cfg.CompressionRatio,
		UseRMSNorm:           m.cfg.UseRMSNorm,
		TargetRMS:            m.cfg.TargetRMS,
		RemoveClicks:         m.cfg.RemoveClicks,
	})

	return Result{Samples: waveform, SampleRate: outRate}, nil
}

func (m *matcha) runAcoustic(tokens []int64) (mel []float32, melDim, frames int, err error) {
	length := int64(len(tokens))
	xTensor, err := int64Tensor([]int64{1, length}, tokens)
	if err != nil {
		return nil, 0, 0, err
	}
	defer xTensor.Destroy()

	xLenTensor, err := int64Tensor([]int64{1}, []int64{length})
	if err != nil {
		return nil, 0, 0, err
	}
	defer xLenTensor.Destroy()

	noiseTensor, err := float32Tensor([]int64{1}, []float32{defaultNoiseScale})
	if err != nil {
		return nil, 0, 0, err
	}
	defer noiseTensor.Destroy()

	lengthScale := m.lengthScale / m.speechRate
	lengthScaleTensor, err := float32Tensor([]int64{1}, []float32{lengthScale})
	if err != nil {
		return nil, 0, 0, err
	}
	defer lengthScaleTensor.Destroy()

	outputs := []ort.Value{nil}
	if err := m.acoustic.Run([]ort.Value{xTensor, xLenTensor, noiseTensor, lengthScaleTensor}, outputs); err != nil {
		return nil, 0, 0, err
	}
	defer destroyAll(outputs...)

	melTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, 0, 0, fmt.Errorf("acoustic output is not a float32 tensor")
	}
	shape := melTensor.GetShape()
	if len(shape) != 3 {
		return nil, 0, 0, fmt.Errorf("unexpected mel shape %v", shape)
	}
	melDim = int(shape[1])
	frames = int(shape[2])
	return melTensor.GetData(), melDim, frames, nil
}

func (m *matcha) runVocoder(mel []float32, melDim, frames int) (real, imag [][]float64, err error) {
	melTensor, err := float32Tensor([]int64{1, int64(melDim), int64(frames)}, mel)
	if err != nil {
		return nil, nil, err
	}
	defer melTensor.Destroy()

	outputs := []ort.Value{nil, nil, nil}
	if err := m.vocoder.Run([]ort.Value{melTensor}, outputs); err != nil {
		return nil, nil, err
	}
	defer destroyAll(outputs...)

	magT, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, nil, fmt.Errorf("vocoder mag output is not float32")
	}
	xT, ok := outputs[1].(*ort.Tensor[float32])
	if !ok {
		return nil, nil, fmt.Errorf("vocoder x output is not float32")
	}
	yT, ok := outputs[2].(*ort.Tensor[float32])
	if !ok {
		return nil, nil, fmt.Errorf("vocoder y output is not float32")
	}

	shape := magT.GetShape()
	if len(shape) != 3 {
		return nil, nil, fmt.Errorf("unexpected vocoder output shape %v", shape)
	}
	nBins := int(shape[1])
	tPrime := int(shape[2])

	mag := magT.GetData()
	xData := xT.GetData()
	yData := yT.GetData()

	real = make([][]float64, tPrime)
	imag = make([][]float64, tPrime)
	for t := 0; t < tPrime; t++ {
		real[t] = make([]float64, nBins)
		imag[t] = make([]float64, nBins)
		for k := 0; k < nBins; k++ {
			idx := k*tPrime + t
			m := mag[idx]
			real[t][k] = float64(m * xData[idx])
			imag[t][k] = float64(m * yData[idx])
		}
	}
	return real, imag, nil
}
