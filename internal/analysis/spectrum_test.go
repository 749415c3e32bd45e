package analysis

import (
	"math"
	"testing"
)

func sine(freq, sampleRate float64, n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}
	return data
}

func TestDominantFrequencyOfSine(t *testing.T) {
	const rate = 64.0
	data := sine(4.0, rate, 256)

	freq, mag := DominantFrequency(data, rate)
	if math.Abs(freq-4.0) > rate/256 {
		t.Errorf("dominant frequency %f, expected 4.0", freq)
	}
	if mag <= 0 {
		t.Error("expected a positive peak magnitude")
	}
}

func TestDominantFrequencyIgnoresDCOffset(t *testing.T) {
	const rate = 64.0
	data := sine(2.0, rate, 256)
	for i := range data {
		data[i] += 100.0 // hanging-rope style offset
	}
	freq, _ := DominantFrequency(data, rate)
	if math.Abs(freq-2.0) > rate/256 {
		t.Errorf("dominant frequency %f with offset, expected 2.0", freq)
	}
}

func TestPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 2, 255: 128, 256: 256, 1000: 512}
	for in, want := range cases {
		if got := PowerOfTwo(in); got != want {
			t.Errorf("PowerOfTwo(%d) = %d, expected %d", in, got, want)
		}
	}
}

func TestPowerSpectrumShortInput(t *testing.T) {
	if ps := PowerSpectrum([]float64{1}); ps != nil {
		t.Error("sub-length input should yield nil spectrum")
	}
}

func TestFFTLinearity(t *testing.T) {
	a := sine(3, 32, 64)
	doubled := make([]float64, len(a))
	for i := range a {
		doubled[i] = 2 * a[i]
	}
	fa := FFT(a)
	fd := FFT(doubled)
	for i := range fa {
		want := 2 * real(fa[i])
		if math.Abs(real(fd[i])-want) > 1e-9 {
			t.Fatalf("bin %d: expected doubling to scale the transform", i)
		}
	}
}
