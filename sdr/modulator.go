package sdr

import (
	"analogtv/internal/metrics"
	"analogtv/video"
)

// Residual carrier at peak white (negative) or sync tip (positive modulation).
const (
	negativeFloor = 0.125
	positiveFloor = 0.05
)

// IreToAmplitude maps a composite level to carrier amplitude in [0, 1].
// Negative modulation puts sync at full carrier; positive modulation (systems
// L and L') puts white there.
func IreToAmplitude(ire float64, positive bool) float64 {
	if positive {
		return ((ire+40.0)/140.0)*(1.0-positiveFloor) + positiveFloor
	}
	return ((ire-100.0)/-140.0)*(1.0-negativeFloor) + negativeFloor
}

// Modulator reads a standard's composite frame in a loop and packs it as
// 8-bit interleaved IQ. It is not safe for concurrent Fill calls.
type Modulator struct {
	standard      video.Standard
	positive      bool
	filter        *FIR
	sampleCounter int
}

// NewModulator creates a modulator over std. taps may be nil to skip filtering.
func NewModulator(std video.Standard, positive bool, taps []float64) *Modulator {
	m := &Modulator{standard: std, positive: positive}
	if len(taps) > 0 {
		m.filter = NewFIR(taps)
	}
	return m
}

// Fill writes len(buf)/2 IQ samples into buf and returns the count.
func (m *Modulator) Fill(buf []byte) int {
	samplesToWrite := len(buf) / 2

	m.standard.RLockFrame()
	defer m.standard.RUnlockFrame()

	frameBuf := m.standard.FrameBuffer()
	if len(frameBuf) == 0 {
		return 0
	}
	for i := 0; i < samplesToWrite; i++ {
		amplitude := IreToAmplitude(frameBuf[m.sampleCounter], m.positive)
		if m.filter != nil {
			amplitude = m.filter.Process(amplitude)
		}
		if amplitude > 1 {
			amplitude = 1
		} else if amplitude < -1 {
			amplitude = -1
		}

		buf[i*2] = byte(int8(amplitude * 127.0))
		buf[i*2+1] = 0

		m.sampleCounter++
		if m.sampleCounter >= len(frameBuf) {
			m.sampleCounter = 0
		}
	}
	metrics.SamplesTransmitted.Add(float64(samplesToWrite))
	return samplesToWrite
}
