package decoder

import (
	"testing"

	"analogtv/frontend"
	"analogtv/video"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSampleRate = 2_000_000

func newTestDecoder(t *testing.T, st frontend.SignalType, positive bool) *Decoder {
	t.Helper()
	tm, err := video.TimingFor(st)
	require.NoError(t, err)
	return New(tm, testSampleRate, positive, zerolog.Nop())
}

func silence(samples int) []byte {
	buf := make([]byte, samples*2)
	for i := range buf {
		buf[i] = 127
	}
	return buf
}

func TestDecoderTiming(t *testing.T) {
	d := newTestDecoder(t, frontend.SignalTypePAL, false)
	assert.InDelta(t, 128.0, d.initialSamplesPerLine, 1e-9)
	assert.Equal(t, 9, d.hSyncPulseWidth)
	assert.InDelta(t, 21, d.lineStartActiveVideo, 1)
	assert.InDelta(t, 104, d.lineEndActiveVideo-d.lineStartActiveVideo, 1)
	assert.Equal(t, StateSearchVSync, d.vSyncState)
}

func TestDecoderFlywheelCompletesFrames(t *testing.T) {
	for _, positive := range []bool{false, true} {
		d := newTestDecoder(t, frontend.SignalTypeNTSC, positive)
		// Two frames' worth of lines with no sync at all.
		d.ProcessIQ(silence(2 * video.FrameHeight * 128))
		assert.GreaterOrEqual(t, d.Frames(), uint64(1))
		assert.Len(t, d.GetDisplayFrame(), video.FrameWidth*video.FrameHeight*3)
	}
}

func TestDecoderLocksOnHSync(t *testing.T) {
	d := newTestDecoder(t, frontend.SignalTypeNTSC, false)
	lineSamples := int(d.initialSamplesPerLine)

	// Lines with a strong carrier sync pulse followed by weak picture.
	var iq []byte
	for line := 0; line < 200; line++ {
		for s := 0; s < lineSamples; s++ {
			v := byte(127 + 20)
			if s < d.hSyncPulseWidth {
				v = 255
			}
			iq = append(iq, v, 127)
		}
	}
	d.ProcessIQ(iq)

	assert.Greater(t, d.y, 0)
	assert.GreaterOrEqual(t, d.samplesPerLine, d.initialSamplesPerLine*0.95)
	assert.LessOrEqual(t, d.samplesPerLine, d.initialSamplesPerLine*1.05)
}

func TestDecoderVSyncSequence(t *testing.T) {
	d := newTestDecoder(t, frontend.SignalTypeNTSC, false)
	d.y = video.FrameHeight - 10

	d.handleSyncPulse(true)
	assert.Equal(t, StateInVSync, d.vSyncState)
	d.handleSyncPulse(true)
	d.handleSyncPulse(true)
	d.handleSyncPulse(false)

	assert.Equal(t, StateSearchVSync, d.vSyncState)
	assert.Equal(t, 0, d.y)
	assert.Equal(t, d.initialSamplesPerLine, d.samplesPerLine)
}

func TestDecoderFalseVSync(t *testing.T) {
	d := newTestDecoder(t, frontend.SignalTypeNTSC, false)
	d.y = video.FrameHeight - 5

	d.handleSyncPulse(true)
	d.handleSyncPulse(false)
	assert.Equal(t, StateSearchVSync, d.vSyncState)
	assert.Equal(t, video.FrameHeight-5, d.y)
}
