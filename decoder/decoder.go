// Package decoder demodulates received IQ samples into greyscale frames.
package decoder

import (
	"math"
	"sync"

	"analogtv/internal/metrics"
	"analogtv/video"

	"github.com/rs/zerolog"
)

// VSyncState defines the states for the vertical sync detection state machine.
type VSyncState int

const (
	// StateSearchVSync is the default state, looking for a V-sync sequence to start.
	StateSearchVSync VSyncState = iota
	// StateInVSync is active when the decoder has detected one or more V-sync
	// serration pulses and is expecting more to follow.
	StateInVSync
)

// H-sync PLL gains.
const (
	pllKp = 0.002
	pllKi = 0.0001
)

// Decoder processes I/Q samples into video frames.
type Decoder struct {
	timing   video.Timing
	positive bool
	logger   zerolog.Logger

	frameBuffer   []byte
	displayBuffer []byte
	frameMutex    sync.Mutex

	x, y                 int
	pixelCounter         int
	smoothedMax          float64
	smoothedMin          float64
	hSyncPulseWidth      int
	syncSearchWindow     int
	lineStartActiveVideo int
	lineEndActiveVideo   int

	initialSamplesPerLine float64
	samplesPerLine        float64 // the PLL's current estimate
	hSyncErrorAccumulator float64
	vSyncState            VSyncState
	vSyncSerrationCounter int

	frames uint64
}

// New creates a decoder for timing. positive selects positive vision
// modulation, where sync is the weakest carrier instead of the strongest.
func New(timing video.Timing, sampleRate float64, positive bool, logger zerolog.Logger) *Decoder {
	d := &Decoder{timing: timing, positive: positive, logger: logger}

	d.initialSamplesPerLine = timing.LineDuration() * sampleRate
	d.samplesPerLine = d.initialSamplesPerLine

	d.hSyncPulseWidth = int(timing.HSync * sampleRate)
	d.syncSearchWindow = int(d.samplesPerLine * 0.20)

	d.lineStartActiveVideo = int(timing.ActiveStart * sampleRate)
	d.lineEndActiveVideo = d.lineStartActiveVideo + int(timing.Active*sampleRate)

	d.frameBuffer = make([]byte, video.FrameWidth*video.FrameHeight*3)
	d.displayBuffer = make([]byte, video.FrameWidth*video.FrameHeight*3)

	d.smoothedMax = 128.0
	d.smoothedMin = 0.0
	d.vSyncState = StateSearchVSync

	logger.Debug().
		Float64("samples_per_line", d.samplesPerLine).
		Int("hsync_width", d.hSyncPulseWidth).
		Int("active_start", d.lineStartActiveVideo).
		Int("active_end", d.lineEndActiveVideo).
		Msg("decoder initialized")
	return d
}

// ProcessIQ demodulates and decodes a chunk of unsigned 8-bit I/Q data.
func (d *Decoder) ProcessIQ(iq []byte) {
	amSignal := make([]float64, len(iq)/2)
	localMax, localMin := 0.0, 255.0
	for i := range amSignal {
		iqI := float64(int(iq[i*2]) - 127)
		iqQ := float64(int(iq[i*2+1]) - 127)
		mag := math.Sqrt(iqI*iqI + iqQ*iqQ)
		if d.positive {
			// Flip so sync is the strongest level, as with negative modulation.
			mag = 180.0 - mag
		}
		amSignal[i] = mag
		localMax = math.Max(localMax, mag)
		localMin = math.Min(localMin, mag)
	}
	d.smoothedMax = d.smoothedMax*0.95 + localMax*0.05
	d.smoothedMin = d.smoothedMin*0.95 + localMin*0.05

	syncTipLevel := d.smoothedMax
	peakWhiteLevel := d.smoothedMin
	syncThreshold := syncTipLevel * 0.75
	blackLevel := syncTipLevel * 0.65
	levelCoeff := 255.0 / (blackLevel - peakWhiteLevel + 1e-6)

	for _, mag := range amSignal {
		if d.x < d.syncSearchWindow {
			if mag >= syncThreshold {
				d.pixelCounter++
			} else {
				if d.pixelCounter > d.hSyncPulseWidth/2 {
					d.handleSyncPulse(d.pixelCounter > d.hSyncPulseWidth*2)
					d.pixelCounter = 0
					continue
				}
				d.pixelCounter = 0
			}
		}

		d.drawSample(mag, blackLevel, levelCoeff)
		d.x++

		// Flywheel for coasting through complete signal loss
		if d.x >= int(d.samplesPerLine) {
			d.x, d.y = 0, d.y+1
		}
		if d.y >= video.FrameHeight {
			d.completeFrame()
		}
	}
}

func (d *Decoder) handleSyncPulse(isLongPulse bool) {
	switch d.vSyncState {
	case StateSearchVSync:
		if d.y > (video.FrameHeight-20) && isLongPulse {
			d.vSyncState = StateInVSync
			d.vSyncSerrationCounter = 1
			return
		}
		// If the pulse is late (error > 0) the line is longer than estimated.
		lineError := float64(d.x) - d.samplesPerLine
		d.hSyncErrorAccumulator += lineError * pllKi
		d.samplesPerLine += lineError*pllKp + d.hSyncErrorAccumulator
		d.samplesPerLine = math.Max(d.samplesPerLine, d.initialSamplesPerLine*0.95)
		d.samplesPerLine = math.Min(d.samplesPerLine, d.initialSamplesPerLine*1.05)
		d.y++
		d.x = 0

	case StateInVSync:
		if isLongPulse && d.vSyncSerrationCounter < 6 {
			d.vSyncSerrationCounter++
			return
		}
		if d.vSyncSerrationCounter >= 3 {
			d.y = 0
			d.x = 0
			d.samplesPerLine = d.initialSamplesPerLine
			d.hSyncErrorAccumulator = 0.0
			metrics.VSyncLocks.Inc()
		}
		d.vSyncState = StateSearchVSync
		d.vSyncSerrationCounter = 0
	}
}

func (d *Decoder) drawSample(mag, blackLevel, levelCoeff float64) {
	if d.y < 0 || d.y >= video.FrameHeight || d.x < d.lineStartActiveVideo || d.x >= d.lineEndActiveVideo {
		return
	}
	samplesInActiveVideo := float64(d.lineEndActiveVideo - d.lineStartActiveVideo)
	relativeSample := float64(d.x - d.lineStartActiveVideo)
	pixelX := int(relativeSample / samplesInActiveVideo * float64(video.FrameWidth))
	if pixelX < 0 || pixelX >= video.FrameWidth {
		return
	}

	brightness := (blackLevel - mag) * levelCoeff
	pixelValue := byte(math.Max(0, math.Min(255, brightness)))

	pixelIndex := (d.y*video.FrameWidth + pixelX) * 3
	d.frameBuffer[pixelIndex] = pixelValue
	d.frameBuffer[pixelIndex+1] = pixelValue
	d.frameBuffer[pixelIndex+2] = pixelValue
}

func (d *Decoder) completeFrame() {
	d.y = 0
	d.frameMutex.Lock()
	copy(d.displayBuffer, d.frameBuffer)
	d.frames++
	d.frameMutex.Unlock()
	metrics.FramesDecoded.Inc()
}

// Frames returns how many frames have been completed.
func (d *Decoder) Frames() uint64 {
	d.frameMutex.Lock()
	defer d.frameMutex.Unlock()
	return d.frames
}

// GetDisplayFrame returns a thread-safe copy of the latest completed frame.
func (d *Decoder) GetDisplayFrame() []byte {
	d.frameMutex.Lock()
	defer d.frameMutex.Unlock()
	frameCopy := make([]byte, len(d.displayBuffer))
	copy(frameCopy, d.displayBuffer)
	return frameCopy
}
