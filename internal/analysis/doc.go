// Package analysis characterises the readout series of recorded runs.
//
// Most animations in the primer are periodic: the number line sweeps with
// a sine, the transform demos rotate at a fixed rate. [Analyze] recovers
// that period from samples alone:
//
//	sp := analysis.Analyze(values)
//	fmt.Printf("period %.1f ticks\n", sp.Period)
//
// Series of any length are accepted; [FFT] zero pads to a power of two.
package analysis
