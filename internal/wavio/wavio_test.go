package wavio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileProducesValidHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []float32{0, 0.5, -0.5, 1.5, -1.5}
	if err := WriteFile(path, samples, 22050); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE markers: %q", data[:12])
	}
	if string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
		t.Fatalf("missing fmt/data chunk markers: %q %q", data[12:16], data[36:40])
	}

	audioFormat := binary.LittleEndian.Uint16(data[20:22])
	if audioFormat != 1 {
		t.Fatalf("audio format = %d, want 1 (PCM)", audioFormat)
	}
	numChannels := binary.LittleEndian.Uint16(data[22:24])
	if numChannels != 1 {
		t.Fatalf("channels = %d, want 1", numChannels)
	}
	bits := binary.LittleEndian.Uint16(data[34:36])
	if bits != 16 {
		t.Fatalf("bits per sample = %d, want 16", bits)
	}

	dataSize := binary.LittleEndian.Uint32(data[40:44])
	wantSize := uint32(len(samples) * 2)
	if dataSize != wantSize {
		t.Fatalf("data chunk size = %d, want %d", dataSize, wantSize)
	}
	if len(data) != 44+int(wantSize) {
		t.Fatalf("file length = %d, want %d", len(data), 44+int(wantSize))
	}
}

func TestWriteFileClampsOutOfRangeSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clamp.wav")
	if err := WriteFile(path, []float32{2.0, -2.0}, 16000); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	first := int16(binary.LittleEndian.Uint16(data[44:46]))
	second := int16(binary.LittleEndian.Uint16(data[46:48]))
	if first != 32767 {
		t.Fatalf("clamped +2.0 sample = %d, want 32767", first)
	}
	if second != -32767 {
		t.Fatalf("clamped -2.0 sample = %d, want -32767", second)
	}
}

func TestStreamingWriterMultipleAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.wav")
	w, err := New(path, 24000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Write([]float32{0.1, 0.2}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Write([]float32{0.3}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	dataSize := binary.LittleEndian.Uint32(data[40:44])
	if dataSize != 6 {
		t.Fatalf("data chunk size = %d, want 6 (3 samples x 2 bytes)", dataSize)
	}
}
