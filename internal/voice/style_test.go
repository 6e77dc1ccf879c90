package voice

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeVoiceFile(t *testing.T, rows int, fill func(row int) float32) string {
	t.Helper()
	buf := make([]byte, rows*styleDim*4)
	for r := 0; r < rows; r++ {
		v := fill(r)
		bits := math.Float32bits(v)
		for c := 0; c < styleDim; c++ {
			off := (r*styleDim + c) * 4
			binary.LittleEndian.PutUint32(buf[off:off+4], bits)
		}
	}
	path := filepath.Join(t.TempDir(), "voice.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRoundTrips(t *testing.T) {
	path := writeVoiceFile(t, 3, func(row int) float32 { return float32(row) + 0.5 })
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Rows != 3 {
		t.Fatalf("Rows = %d, want 3", s.Rows)
	}
	row1 := s.RowFor(1)
	if len(row1) != styleDim || row1[0] != 1.5 {
		t.Fatalf("RowFor(1)[0] = %v, want 1.5", row1[0])
	}
}

func TestRowForClampsToLastRow(t *testing.T) {
	path := writeVoiceFile(t, 2, func(row int) float32 { return float32(row) })
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	row := s.RowFor(100)
	if row[0] != 1 {
		t.Fatalf("RowFor(100)[0] = %v, want 1 (last row, clamped)", row[0])
	}
}

func TestRowForClampsNegativeToZero(t *testing.T) {
	path := writeVoiceFile(t, 2, func(row int) float32 { return float32(row) })
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	row := s.RowFor(-5)
	if row[0] != 0 {
		t.Fatalf("RowFor(-5)[0] = %v, want 0", row[0])
	}
}

func TestLoadRejectsMalformedLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load of malformed file did not error")
	}
}
