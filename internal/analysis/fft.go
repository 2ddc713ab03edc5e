package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT returns the discrete Fourier transform of data, zero padded to the
// next power of two.
func FFT(data []float64) []complex128 {
	padded := make([]float64, nextPow2(len(data)))
	copy(padded, data)
	return fft.FFTReal(padded)
}

// PowerSpectrum returns the magnitudes of the non-negative frequency bins.
func PowerSpectrum(data []float64) []float64 {
	f := FFT(data)
	ps := make([]float64, len(f)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(f[i])
	}
	return ps
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
