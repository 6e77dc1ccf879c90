// Package dsp implements the inverse-STFT vocoder reconstruction and the
// audio post-processing / resampling stages shared by every acoustic
// backend.
package dsp

import "math"

// HannWindow returns a symmetric Hann window of n samples: w[0] = w[n-1] =
// 0, peaking at 1 in the middle.
func HannWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := 0; i < n; i++ {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
