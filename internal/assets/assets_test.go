package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestByKindKnownAndUnknown(t *testing.T) {
	b, ok := ByKind(KindMatchaZH)
	if !ok || b.RelDir == "" {
		t.Fatalf("ByKind(matcha-zh) = %+v, %v, want a populated bundle", b, ok)
	}
	if _, ok := ByKind(Kind("nonexistent")); ok {
		t.Fatalf("ByKind(nonexistent) reported ok=true")
	}
}

func TestVoiceByNameKnownAndUnknown(t *testing.T) {
	if _, ok := VoiceByName("af_bella"); !ok {
		t.Fatalf("VoiceByName(af_bella) not found")
	}
	if _, ok := VoiceByName("nope"); ok {
		t.Fatalf("VoiceByName(nope) reported ok=true")
	}
}

func TestNewManagerUsesProvidedRoot(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "cache")
	m, err := NewManager(root)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.cacheRoot != root {
		t.Fatalf("cacheRoot = %q, want %q", m.cacheRoot, root)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		t.Fatalf("NewManager did not create cache root: %v", err)
	}
}

func TestBundlePresentNoneArchive(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	bundle, _ := ByKind(KindKokoro)
	dir := filepath.Join(m.cacheRoot, bundle.RelDir)
	if m.bundlePresent(bundle, dir) {
		t.Fatalf("bundlePresent reported true before any file was written")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, filepath.Base(bundle.URL))
	if err := os.WriteFile(path, []byte("onnx-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !m.bundlePresent(bundle, dir) {
		t.Fatalf("bundlePresent reported false after writing the expected file")
	}
}

func TestBundlePresentTarGzArchiveChecksDirectory(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	bundle, _ := ByKind(KindMatchaZH)
	dir := filepath.Join(m.cacheRoot, bundle.RelDir)
	if m.bundlePresent(bundle, dir) {
		t.Fatalf("bundlePresent reported true before extraction")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if !m.bundlePresent(bundle, dir) {
		t.Fatalf("bundlePresent reported false after directory existed")
	}
}
