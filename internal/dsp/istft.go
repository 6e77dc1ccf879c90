package dsp

import "gonum.org/v1/gonum/dsp/fourier"

// ISTFT reconstructs a time-domain signal via overlap-add from real/imag
// STFT frames of shape [T][K] (K = nFFT/2+1), a Hann window of winLength
// samples, and hop-size hop between frames.
func ISTFT(real, imag [][]float64, nFFT, hop, winLength int) []float64 {
	t := len(real)
	if t == 0 {
		return nil
	}
	outLen := nFFT + (t-1)*hop
	out := make([]float64, outLen)
	energy := make([]float64, outLen)
	window := HannWindow(winLength)
	fft := fourier.NewFFT(nFFT)
	k := nFFT/2 + 1

	spectrum := make([]complex128, k)
	for frame := 0; frame < t; frame++ {
		for bin := 0; bin < k; bin++ {
			if bin < len(real[frame]) {
				spectrum[bin] = complex(real[frame][bin], imag[frame][bin])
			} else {
				spectrum[bin] = 0
			}
		}
		timeDomain := fft.Sequence(nil, spectrum)
		offset := frame * hop
		for i := 0; i < nFFT; i++ {
			sample := timeDomain[i] / float64(nFFT)
			if i < winLength {
				sample *= window[i]
				energy[offset+i] += window[i] * window[i]
			}
			out[offset+i] += sample
		}
	}

	for i := range out {
		if energy[i] > 1e-8 {
			out[i] /= energy[i]
		}
	}
	return out
}
