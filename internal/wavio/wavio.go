// Package wavio writes canonical RIFF/WAVE PCM16 mono files from float32
// sample buffers, clamping to [-1, 1] and scaling by 32767 per spec.md §6.
package wavio

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"
)

const (
	bitsPerSample = 16
	channels      = 1
)

// WriteFile writes samples as a single complete mono PCM16 WAV file at the
// given sample rate.
func WriteFile(path string, samples []float32, sampleRate int) error {
	w, err := New(path, sampleRate)
	if err != nil {
		return err
	}
	if err := w.Write(samples); err != nil {
		w.file.Close()
		return err
	}
	return w.Close()
}

// Writer is a streaming PCM16 mono WAV writer: it writes a placeholder
// header immediately, appends samples as they arrive, and rewrites the
// header with the final size on Close.
type Writer struct {
	file           *os.File
	sampleRate     int
	samplesWritten int64
	mu             sync.Mutex
}

// New creates path and writes a placeholder header.
func New(path string, sampleRate int) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: create %s: %w", path, err)
	}
	w := &Writer{file: file, sampleRate: sampleRate}
	if err := w.writeHeader(); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) writeHeader() error {
	if _, err := w.file.Seek(0, 0); err != nil {
		return fmt.Errorf("wavio: seek to header: %w", err)
	}

	byteRate := w.sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := uint32(w.samplesWritten * (bitsPerSample / 8))

	if _, err := w.file.WriteString("RIFF"); err != nil {
		return err
	}
	if err := binary.Write(w.file, binary.LittleEndian, uint32(36+dataSize)); err != nil {
		return err
	}
	if _, err := w.file.WriteString("WAVE"); err != nil {
		return err
	}

	if _, err := w.file.WriteString("fmt "); err != nil {
		return err
	}
	for _, v := range []any{
		uint32(16), uint16(1), uint16(channels), uint32(w.sampleRate),
		uint32(byteRate), uint16(blockAlign), uint16(bitsPerSample),
	} {
		if err := binary.Write(w.file, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("wavio: write fmt chunk: %w", err)
		}
	}

	if _, err := w.file.WriteString("data"); err != nil {
		return err
	}
	return binary.Write(w.file, binary.LittleEndian, dataSize)
}

// Write appends samples, clamping each to [-1, 1] and scaling to int16.
func (w *Writer) Write(samples []float32) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Seek(0, 2); err != nil {
		return fmt.Errorf("wavio: seek to end: %w", err)
	}
	for _, s := range samples {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		sample := int16(s * 32767)
		if err := binary.Write(w.file, binary.LittleEndian, sample); err != nil {
			return fmt.Errorf("wavio: write sample: %w", err)
		}
		w.samplesWritten++
	}
	return nil
}

// Close rewrites the header with the final data size and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writeHeader(); err != nil {
		w.file.Close()
		return fmt.Errorf("wavio: finalize header: %w", err)
	}
	return w.file.Close()
}
