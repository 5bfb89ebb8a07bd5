package sdr

import (
	"testing"

	"analogtv/frontend"
	"analogtv/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowPassFilterTaps(t *testing.T) {
	taps := NewLowPassFilterTaps(63, 1.5e6, 8e6)
	require.Len(t, taps, 63)

	var sum float64
	for _, v := range taps {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// Symmetric around the centre tap, which is the largest.
	for i := range taps {
		assert.InDelta(t, taps[i], taps[len(taps)-1-i], 1e-12)
		assert.LessOrEqual(t, taps[i], taps[31])
	}
}

func TestFIRPassesDC(t *testing.T) {
	f := NewFIR(NewLowPassFilterTaps(31, 1e6, 8e6))
	var y float64
	for i := 0; i < 100; i++ {
		y = f.Process(0.5)
	}
	assert.InDelta(t, 0.5, y, 1e-9)
}

func TestIreToAmplitude(t *testing.T) {
	assert.InDelta(t, 1.0, IreToAmplitude(-40, false), 1e-9)
	assert.InDelta(t, negativeFloor, IreToAmplitude(100, false), 1e-9)

	assert.InDelta(t, positiveFloor, IreToAmplitude(-40, true), 1e-9)
	assert.InDelta(t, 1.0, IreToAmplitude(100, true), 1e-9)

	assert.Greater(t, IreToAmplitude(0, false), IreToAmplitude(50, false))
	assert.Less(t, IreToAmplitude(0, true), IreToAmplitude(50, true))
}

func TestModulatorFill(t *testing.T) {
	std, err := video.NewStandard(frontend.SignalTypeNTSC, 2_000_000)
	require.NoError(t, err)
	std.GenerateFullFrame()

	m := NewModulator(std, false, nil)
	buf := make([]byte, 1024)
	n := m.Fill(buf)
	assert.Equal(t, 512, n)

	// Line 1 starts with an equalizing pulse at sync level: full carrier.
	assert.Equal(t, byte(127), buf[0])
	for i := 1; i < len(buf); i += 2 {
		assert.Zero(t, buf[i])
	}
}

func TestModulatorWrapsFrame(t *testing.T) {
	std, err := video.NewStandard(frontend.SignalTypePAL, 2_000_000)
	require.NoError(t, err)
	std.GenerateFullFrame()

	frameLen := len(std.FrameBuffer())
	m := NewModulator(std, true, nil)
	buf := make([]byte, 2*(frameLen+3))
	m.Fill(buf)
	assert.Equal(t, 3, m.sampleCounter)
	assert.Equal(t, buf[0], buf[2*frameLen])
}
