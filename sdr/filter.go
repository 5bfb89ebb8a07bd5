// Package sdr turns composite video into IQ samples for the radio front ends.
package sdr

import "math"

// NewLowPassFilterTaps creates the coefficients (taps) for a FIR low-pass filter.
// A Blackman window is used for good performance.
func NewLowPassFilterTaps(numTaps int, bandwidth, sampleRate float64) []float64 {
	taps := make([]float64, numTaps)
	cutoffFreq := bandwidth / 2.0
	normalizedCutoff := cutoffFreq / sampleRate

	M := float64(numTaps - 1)
	var sum float64
	for i := 0; i < numTaps; i++ {
		n := float64(i)
		window := 0.42 - 0.5*math.Cos(2*math.Pi*n/M) + 0.08*math.Cos(4*math.Pi*n/M)

		var sinc float64
		if n == M/2 {
			sinc = 2 * math.Pi * normalizedCutoff
		} else {
			sinc = math.Sin(2*math.Pi*normalizedCutoff*(n-M/2)) / (n - M/2)
		}

		taps[i] = sinc * window
		sum += taps[i]
	}

	// Normalize the taps to have a gain of 1 at DC (0 Hz)
	for i := range taps {
		taps[i] /= sum
	}
	return taps
}

// FIR is a streaming FIR filter with its own delay line.
type FIR struct {
	taps  []float64
	delay []float64
	pos   int
}

// NewFIR returns a filter over a copy of taps.
func NewFIR(taps []float64) *FIR {
	return &FIR{taps: append([]float64(nil), taps...), delay: make([]float64, len(taps))}
}

// Process pushes x through the filter and returns the next output sample.
func (f *FIR) Process(x float64) float64 {
	f.delay[f.pos] = x
	var y float64
	idx := f.pos
	for _, t := range f.taps {
		y += t * f.delay[idx]
		idx--
		if idx < 0 {
			idx = len(f.delay) - 1
		}
	}
	f.pos++
	if f.pos == len(f.delay) {
		f.pos = 0
	}
	return y
}
