package assets

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Manager resolves cached model directories, downloading and extracting
// bundles on demand.
type Manager struct {
	cacheRoot  string
	mu         sync.Mutex
	downloads  map[Kind]context.CancelFunc
	onProgress ProgressCallback
}

// ProgressCallback reports download progress for a specific bundle.
type ProgressCallback func(id Kind, progress float64, err error)

// NewManager creates a Manager rooted at cacheRoot. If cacheRoot is empty,
// it resolves to $XDG_CACHE_HOME or $HOME/.cache.
func NewManager(cacheRoot string) (*Manager, error) {
	if cacheRoot == "" {
		resolved, err := defaultCacheRoot()
		if err != nil {
			return nil, err
		}
		cacheRoot = resolved
	}
	if err := os.MkdirAll(cacheRoot, 0o755); err != nil {
		return nil, fmt.Errorf("assets: create cache root: %w", err)
	}
	return &Manager{cacheRoot: cacheRoot, downloads: make(map[Kind]context.CancelFunc)}, nil
}

func defaultCacheRoot() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("assets: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cache"), nil
}

// SetProgressCallback installs cb for downloads started by subsequent
// ResolveModelDir, ResolveVocoderPath, and ResolveVoicePath calls.
func (m *Manager) SetProgressCallback(cb ProgressCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onProgress = cb
}

// ResolveModelDir returns the on-disk directory a backend of the given kind
// should load its model/tokens/lexicon files from, downloading and
// extracting the bundle first if it is not already present.
func (m *Manager) ResolveModelDir(ctx context.Context, kind Kind) (string, error) {
	bundle, ok := ByKind(kind)
	if !ok {
		return "", fmt.Errorf("assets: unknown bundle kind %q", kind)
	}
	dir := filepath.Join(m.cacheRoot, bundle.RelDir)

	if m.bundlePresent(bundle, dir) {
		return dir, nil
	}
	if err := m.fetch(ctx, bundle, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// ResolveVocoderPath returns the path to the Vocos vocoder matching
// sampleRate, downloading it if absent.
func (m *Manager) ResolveVocoderPath(ctx context.Context, sampleRate int) (string, error) {
	bundle, ok := VocoderRegistry[sampleRate]
	if !ok {
		return "", fmt.Errorf("assets: no vocoder registered for sample rate %d", sampleRate)
	}
	dir := filepath.Join(m.cacheRoot, bundle.RelDir)
	path := filepath.Join(dir, filepath.Base(bundle.URL))
	if fileExists(path) {
		return path, nil
	}
	if err := downloadFile(ctx, bundle.URL, path, bundle.SizeBytes, m.progressFunc("")); err != nil {
		return "", fmt.Errorf("assets: download vocoder: %w", err)
	}
	return path, nil
}

// ResolveVoicePath returns the path to a Kokoro voice style file, downloading
// it from the registry if absent.
func (m *Manager) ResolveVoicePath(ctx context.Context, name string) (string, error) {
	voice, ok := VoiceByName(name)
	if !ok {
		return "", fmt.Errorf("assets: unknown voice %q", name)
	}
	dir := filepath.Join(m.cacheRoot, "kokoro-tts", "voices")
	path := filepath.Join(dir, name+".bin")
	if fileExists(path) {
		return path, nil
	}
	if err := downloadFile(ctx, voice.URL, path, 0, m.progressFunc("")); err != nil {
		return "", fmt.Errorf("assets: download voice %s: %w", name, err)
	}
	return path, nil
}

func (m *Manager) bundlePresent(bundle BundleInfo, dir string) bool {
	switch bundle.Archive {
	case ArchiveNone:
		path := filepath.Join(dir, filepath.Base(bundle.URL))
		return fileExists(path)
	default:
		info, err := os.Stat(dir)
		return err == nil && info.IsDir()
	}
}

func (m *Manager) fetch(ctx context.Context, bundle BundleInfo, dir string) error {
	switch bundle.Archive {
	case ArchiveNone:
		path := filepath.Join(dir, filepath.Base(bundle.URL))
		if err := downloadFile(ctx, bundle.URL, path, bundle.SizeBytes, m.progressFunc(bundle.ID)); err != nil {
			return fmt.Errorf("assets: download %s: %w", bundle.Name, err)
		}
	case ArchiveTarGz:
		if err := downloadAndExtractTarGz(ctx, bundle.URL, dir, bundle.SizeBytes, m.progressFunc(bundle.ID)); err != nil {
			return fmt.Errorf("assets: download+extract %s: %w", bundle.Name, err)
		}
	default:
		return fmt.Errorf("assets: unsupported archive type %q for %s", bundle.Archive, bundle.Name)
	}
	log.Printf("assets: provisioned %s at %s", bundle.Name, dir)
	return nil
}

func (m *Manager) progressFunc(id Kind) ProgressFunc {
	return func(progress float64) {
		m.mu.Lock()
		cb := m.onProgress
		m.mu.Unlock()
		if cb != nil {
			cb(id, progress, nil)
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
