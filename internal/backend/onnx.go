package backend

import (
	"fmt"
	"log"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

var (
	onnxInitMu sync.Mutex
	onnxReady  bool
)

// ensureONNXRuntime initializes the ONNX Runtime environment once, process
// wide, resolving the shared library from ONNXRUNTIME_SHARED_LIBRARY_PATH
// or a handful of conventional install locations.
func ensureONNXRuntime() error {
	onnxInitMu.Lock()
	defer onnxInitMu.Unlock()

	if onnxReady {
		return nil
	}

	libPath := os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH")
	if libPath == "" {
		candidates := []string{
			"/usr/local/lib/libonnxruntime.so",
			"/usr/lib/libonnxruntime.so",
			"./libonnxruntime.so",
			"./libonnxruntime.dylib",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				libPath = c
				break
			}
		}
	}
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("backend: initialize onnx runtime: %w", err)
	}
	onnxReady = true
	log.Println("backend: onnx runtime initialized")
	return nil
}

// sessionNames reads the input/output tensor names a model graph exposes,
// used to verify the exact-name contract spec.md §4.4/§4.7 require before
// building the session.
func sessionNames(modelPath string) (inputs, outputs []string, err error) {
	inputInfo, outputInfo, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("backend: inspect %s: %w", modelPath, err)
	}
	inputs = make([]string, len(inputInfo))
	for i, info := range inputInfo {
		inputs[i] = info.Name
	}
	outputs = make([]string, len(outputInfo))
	for i, info := range outputInfo {
		outputs[i] = info.Name
	}
	return inputs, outputs, nil
}

// requireNames fails fast if got doesn't contain every name in want, in any
// order — a name mismatch is a fatal init error per spec.md §6.
func requireNames(kind, modelPath string, want, got []string) error {
	present := make(map[string]bool, len(got))
	for _, n := range got {
		present[n] = true
	}
	for _, n := range want {
		if !present[n] {
			return fmt.Errorf("backend: %s model %s missing expected tensor %q (graph has %v)", kind, modelPath, n, got)
		}
	}
	return nil
}

func newSession(modelPath string, inputNames, outputNames []string, threads int) (*ort.DynamicAdvancedSession, error) {
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("backend: model file not found: %s", modelPath)
	}

	var options *ort.SessionOptions
	if threads > 0 {
		opts, err := ort.NewSessionOptions()
		if err != nil {
			return nil, fmt.Errorf("backend: session options: %w", err)
		}
		defer opts.Destroy()
		if err := opts.SetIntraOpNumThreads(threads); err != nil {
			log.Printf("backend: set intra-op threads failed: %v", err)
		}
		options = opts
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath, inputNames, outputNames, options)
	if err != nil {
		return nil, fmt.Errorf("backend: create session for %s: %w", modelPath, err)
	}
	return session, nil
}

func int64Tensor(shape []int64, data []int64) (*ort.Tensor[int64], error) {
	return ort.NewTensor(ort.NewShape(shape...), data)
}

func float32Tensor(shape []int64, data []float32) (*ort.Tensor[float32], error) {
	return ort.NewTensor(ort.NewShape(shape...), data)
}

func destroyAll(values ...ort.Value) {
	for _, v := range values {
		if v != nil {
			v.Destroy()
		}
	}
}
