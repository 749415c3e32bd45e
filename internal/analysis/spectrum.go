// Package analysis extracts frequency content from recorded rope
// trajectories, mainly the dominant sway frequency of the tip.
package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of data, whose length must
// be a power of two (callers truncate with [PowerOfTwo]).
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PowerOfTwo returns the largest power-of-two prefix length of n.
func PowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// PowerSpectrum returns the magnitude of the positive-frequency half of
// the signal's transform, with the mean removed first so the DC offset
// of a hanging rope does not swamp the sway peak.
func PowerSpectrum(data []float64) []float64 {
	n := PowerOfTwo(len(data))
	if n < 2 {
		return nil
	}
	trimmed := make([]float64, n)
	mean := 0.0
	for _, v := range data[:n] {
		mean += v
	}
	mean /= float64(n)
	for i, v := range data[:n] {
		trimmed[i] = v - mean
	}

	fft := FFT(trimmed)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// DominantFrequency returns the peak frequency in hertz of a signal
// sampled at sampleRate, and the peak's magnitude.
func DominantFrequency(data []float64, sampleRate float64) (float64, float64) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, 0
	}
	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	n := PowerOfTwo(len(data))
	return float64(peak) * sampleRate / float64(n), ps[peak]
}
