// Package voice loads Kokoro voice-style matrices: raw little-endian
// float32 blobs reshaped to (N, 256) row vectors, one row selected per call
// by clamped token length.
package voice

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

const styleDim = 256

// Style holds a loaded voice matrix: Rows rows of styleDim float32 values
// each.
type Style struct {
	Rows int
	Data []float32 // len == Rows*styleDim, row-major
}

// Load reads a Kokoro voice .bin file. The file's byte length must be a
// multiple of styleDim*4; anything else is a malformed voice file.
func Load(path string) (*Style, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("voice: read %s: %w", path, err)
	}
	const floatSize = 4
	rowBytes := styleDim * floatSize
	if len(raw) == 0 || len(raw)%rowBytes != 0 {
		return nil, fmt.Errorf("voice: %s length %d is not a multiple of %d bytes", path, len(raw), rowBytes)
	}

	rows := len(raw) / rowBytes
	data := make([]float32, rows*styleDim)
	for i := range data {
		bits := binary.LittleEndian.Uint32(raw[i*floatSize : i*floatSize+floatSize])
		data[i] = math.Float32frombits(bits)
	}
	return &Style{Rows: rows, Data: data}, nil
}

// RowFor selects the style row for an utterance of the given token length:
// row min(tokenLen, Rows-1), clamped to a minimum of 0.
func (s *Style) RowFor(tokenLen int) []float32 {
	idx := tokenLen
	if idx > s.Rows-1 {
		idx = s.Rows - 1
	}
	if idx < 0 {
		idx = 0
	}
	return s.Data[idx*styleDim : (idx+1)*styleDim]
}
