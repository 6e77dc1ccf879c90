// Command synthesize is a thin demo driver over the tts engine: it takes a
// line of text on the command line and writes the synthesized audio to a
// WAV file. It exists only to exercise the core end-to-end and is not part
// of the engine itself.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"tts"
)

func main() {
	var (
		text      = flag.String("text", "", "text to synthesize (required)")
		backend   = flag.String("backend", string(tts.BackendKokoro), "backend: matcha-zh, matcha-en, matcha-zh-en, kokoro")
		modelDir  = flag.String("model-dir", "", "directory holding the backend's model files (required)")
		voice     = flag.String("voice", "af_bella", "voice name (kokoro only)")
		speakerID = flag.Int("speaker", 0, "speaker id (matcha multi-speaker checkpoints)")
		speed     = flag.Float64("speed", 1.0, "speech rate multiplier")
		out       = flag.String("out", "out.wav", "output WAV file path")
		threads   = flag.Int("threads", 1, "ONNX Runtime intra-op thread count")
		warmup    = flag.Bool("warmup", false, "run a throwaway inference at startup")
	)
	flag.Parse()

	if *text == "" || *modelDir == "" {
		log.Println("usage: synthesize -text \"...\" -model-dir <path> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := tts.EngineConfig{
		Backend:          tts.BackendKind(*backend),
		ModelDir:         *modelDir,
		Voice:            *voice,
		SpeakerID:        *speakerID,
		SpeechRate:       float32(*speed),
		OutputSampleRate: 0,
		UseRMSNorm:       true,
		TargetRMS:        0.1,
		InferenceThreads: *threads,
		Warmup:           *warmup,
	}

	log.Printf("initializing backend %s from %s", cfg.Backend, cfg.ModelDir)
	start := time.Now()

	engine, err := tts.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize engine: %v", err)
	}
	defer engine.Shutdown()

	log.Printf("backend ready in %s", time.Since(start))

	result := engine.CallToFile(*text, *out)
	if !result.Success {
		log.Fatalf("synthesis failed: %s: %s", result.Error.Kind, result.Error.Message)
	}

	log.Printf("wrote %s: %.0fms audio in %.0fms (RTF %.3f)", *out, result.AudioDurationMs, result.ProcessingMs, result.RTF)
}
