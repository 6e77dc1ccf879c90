// Package assets resolves and provisions the on-disk model bundles consumed
// by internal/backend: Matcha acoustic/vocoder ONNX sessions, their
// tokenizer/lexicon files, and the Kokoro model plus its voice styles. It is
// an external collaborator — backends only ever see resolved file paths.
package assets

// Kind identifies a model bundle. It mirrors tts.BackendKind's string
// values without importing the root package.
type Kind string

const (
	KindMatchaZH   Kind = "matcha-zh"
	KindMatchaEN   Kind = "matcha-en"
	KindMatchaZHEN Kind = "matcha-zh-en"
	KindKokoro     Kind = "kokoro"
)

// ArchiveType names how a bundle is packaged at its download URL.
type ArchiveType string

const (
	ArchiveNone  ArchiveType = "none" // a single bare file
	ArchiveTarGz ArchiveType = "tar.gz"
)

// BundleInfo describes one downloadable model bundle.
type BundleInfo struct {
	ID          Kind
	Name        string
	Description string
	URL         string
	Archive     ArchiveType
	// RelDir is the subdirectory under the cache root this bundle unpacks
	// into (or lives in, for ArchiveNone single files placed directly).
	RelDir string
	// SizeBytes is an estimate used for progress reporting when the server
	// does not report Content-Length.
	SizeBytes int64
}

// VoiceInfo describes one Kokoro voice style file.
type VoiceInfo struct {
	Name string
	URL  string
}

// Registry lists the bundles spec.md §6's cache layout names.
var Registry = []BundleInfo{
	{
		ID:          KindMatchaZH,
		Name:        "Matcha ZH (Baker)",
		Description: "Mandarin Matcha acoustic model, icefall baker checkpoint",
		URL:         "https://huggingface.co/csukuangfj/matcha-icefall-zh-baker/resolve/main/matcha-icefall-zh-baker.tar.gz",
		Archive:     ArchiveTarGz,
		RelDir:      "matcha-tts/matcha-icefall-zh-baker",
		SizeBytes:   75_000_000,
	},
	{
		ID:          KindMatchaEN,
		Name:        "Matcha EN (LJSpeech)",
		Description: "English Matcha acoustic model, icefall LJSpeech checkpoint",
		URL:         "https://huggingface.co/csukuangfj/matcha-icefall-en_US-ljspeech/resolve/main/matcha-icefall-en_US-ljspeech.tar.gz",
		Archive:     ArchiveTarGz,
		RelDir:      "matcha-tts/matcha-icefall-en_US-ljspeech",
		SizeBytes:   75_000_000,
	},
	{
		ID:          KindMatchaZHEN,
		Name:        "Matcha ZH-EN (bilingual)",
		Description: "Code-switched Chinese-English Matcha acoustic model",
		URL:         "https://huggingface.co/csukuangfj/matcha-icefall-zh-en/resolve/main/matcha-icefall-zh-en.tar.gz",
		Archive:     ArchiveTarGz,
		RelDir:      "matcha-tts/matcha-icefall-zh-en",
		SizeBytes:   80_000_000,
	},
	{
		ID:          KindKokoro,
		Name:        "Kokoro",
		Description: "Kokoro end-to-end multilingual acoustic+vocoder model",
		URL:         "https://huggingface.co/csukuangfj/kokoro-tts/resolve/main/kokoro-v1.0.onnx",
		Archive:     ArchiveNone,
		RelDir:      "kokoro-tts",
		SizeBytes:   330_000_000,
	},
}

// VocoderRegistry lists the Vocos vocoder variants shared by all Matcha
// bundles, keyed by the acoustic model's native sample rate.
var VocoderRegistry = map[int]BundleInfo{
	22050: {
		Name:        "Vocos 22kHz universal",
		Description: "Vocos universal vocoder, 22.05kHz",
		URL:         "https://huggingface.co/csukuangfj/vocos-22khz-univ/resolve/main/vocos-22khz-univ.onnx",
		Archive:     ArchiveNone,
		RelDir:      "matcha-tts",
	},
	16000: {
		Name:        "Vocos 16kHz universal",
		Description: "Vocos universal vocoder, 16kHz",
		URL:         "https://huggingface.co/csukuangfj/vocos-16khz-univ/resolve/main/vocos-16khz-univ.onnx",
		Archive:     ArchiveNone,
		RelDir:      "matcha-tts",
	},
}

// Voices lists the named Kokoro voice styles available for download.
var Voices = []VoiceInfo{
	{Name: "af_bella", URL: "https://huggingface.co/csukuangfj/kokoro-tts/resolve/main/voices/af_bella.bin"},
	{Name: "af_sarah", URL: "https://huggingface.co/csukuangfj/kokoro-tts/resolve/main/voices/af_sarah.bin"},
	{Name: "am_adam", URL: "https://huggingface.co/csukuangfj/kokoro-tts/resolve/main/voices/am_adam.bin"},
	{Name: "zf_xiaoxiao", URL: "https://huggingface.co/csukuangfj/kokoro-tts/resolve/main/voices/zf_xiaoxiao.bin"},
}

// ByKind returns the bundle info for id, or false if id is unknown.
func ByKind(id Kind) (BundleInfo, bool) {
	for _, b := range Registry {
		if b.ID == id {
			return b, true
		}
	}
	return BundleInfo{}, false
}

// VoiceByName returns the voice info for name, or false if unknown.
func VoiceByName(name string) (VoiceInfo, bool) {
	for _, v := range Voices {
		if v.Name == name {
			return v, true
		}
	}
	return VoiceInfo{}, false
}
