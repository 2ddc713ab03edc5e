package analysis

import "math"

// Spectrum summarises the frequency content of one readout series.
type Spectrum struct {
	Samples   int
	Mean      float64
	Amplitude float64

	// Bin is the strongest non-DC frequency bin, 0 for a constant series.
	Bin    int
	// Period is the dominant period in ticks, +Inf for a constant series.
	Period float64
}

// Analyze removes the mean from values and locates the dominant frequency.
func Analyze(values []float64) Spectrum {
	sp := Spectrum{Samples: len(values), Period: math.Inf(1)}
	if len(values) < 2 {
		if len(values) == 1 {
			sp.Mean = values[0]
		}
		return sp
	}

	for _, v := range values {
		sp.Mean += v
	}
	sp.Mean /= float64(len(values))

	centred := make([]float64, len(values))
	for i, v := range values {
		centred[i] = v - sp.Mean
	}

	ps := PowerSpectrum(centred)
	for k := 1; k < len(ps); k++ {
		if ps[k] > sp.Amplitude {
			sp.Bin, sp.Amplitude = k, ps[k]
		}
	}
	if sp.Bin == 0 || sp.Amplitude < 1e-9 {
		sp.Bin, sp.Amplitude = 0, 0
		return sp
	}

	n := nextPow2(len(values))
	sp.Period = float64(n) / float64(sp.Bin)
	// Amplitude of a unit sine over the unpadded span is len/2.
	sp.Amplitude /= float64(len(values)) / 2
	return sp
}
