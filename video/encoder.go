package video

import (
	"math"
	"sync"
	"sync/atomic"

	"analogtv/frontend"
	"analogtv/internal/metrics"
)

// Composite levels in IRE.
const (
	levelSync      = -40.0
	levelBlanking  = 0.0
	levelWhite     = 100.0
	burstAmplitude = 20.0
	secamAmplitude = 16.0
)

// SECAM FM chroma: rest frequency and deviation of the Db and Dr lines.
const (
	secamDbRest      = 4250000.0
	secamDbDeviation = 230000.0
	secamDrRest      = 4406250.0
	secamDrDeviation = -280000.0
)

// Encoder generates a composite frame for any Timing.
type Encoder struct {
	timing     Timing
	sampleRate float64

	lineSamples        int
	hSyncSamples       int
	vSyncPulseSamples  int
	eqPulseSamples     int
	burstStartSamples  int
	burstEndSamples    int
	activeStartSamples int
	activeSamples      int

	rawFrameBuffer []byte
	rawFrameMutex  sync.RWMutex
	frameBuffer    []float64
	frameMutex     sync.RWMutex

	frames atomic.Uint64
}

// NewStandard creates the encoder for a concrete signal type.
func NewStandard(signal frontend.SignalType, sampleRate float64) (*Encoder, error) {
	t, err := TimingFor(signal)
	if err != nil {
		return nil, err
	}
	return NewEncoder(t, sampleRate), nil
}

// NewEncoder creates an encoder for t at sampleRate.
func NewEncoder(t Timing, sampleRate float64) *Encoder {
	e := &Encoder{timing: t, sampleRate: sampleRate}
	e.lineSamples = t.SamplesPerLine(sampleRate)
	e.hSyncSamples = int(t.HSync * sampleRate)
	e.vSyncPulseSamples = int(t.VSyncPulse * sampleRate)
	e.eqPulseSamples = int(t.EqPulse * sampleRate)
	e.burstStartSamples = int(t.BurstStart * sampleRate)
	e.burstEndSamples = e.burstStartSamples + int(t.BurstLength*sampleRate)
	e.activeStartSamples = int(t.ActiveStart * sampleRate)
	e.activeSamples = int(t.Active * sampleRate)
	if e.activeStartSamples+e.activeSamples > e.lineSamples {
		e.activeSamples = e.lineSamples - e.activeStartSamples
	}
	e.rawFrameBuffer = make([]byte, FrameWidth*FrameHeight*3)
	e.frameBuffer = make([]float64, e.lineSamples*t.Lines)
	return e
}

// GenerateFullFrame creates a complete composite frame from the raw pixel data.
// The caller holds the frame lock.
func (e *Encoder) GenerateFullFrame() {
	e.rawFrameMutex.RLock()
	defer e.rawFrameMutex.RUnlock()

	var subcarrierPhase float64
	phaseIncrement := 2.0 * math.Pi * e.timing.Subcarrier / e.sampleRate
	vToggle := 1.0

	for line := 1; line <= e.timing.Lines; line++ {
		offset := (line - 1) * e.lineSamples
		lineBuffer := e.frameBuffer[offset : offset+e.lineSamples]
		kind, row := e.timing.layout(line)
		e.generateLumaLine(lineBuffer, kind, row)

		if kind != lineActive {
			subcarrierPhase += phaseIncrement * float64(e.lineSamples)
			vToggle *= -1.0
			continue
		}

		switch e.timing.Colour {
		case ColourNTSC:
			subcarrierPhase = e.addNTSCChroma(lineBuffer, row, subcarrierPhase, phaseIncrement)
		case ColourPAL:
			subcarrierPhase = e.addPALChroma(lineBuffer, line, row, vToggle, subcarrierPhase, phaseIncrement)
		case ColourSECAM:
			e.addSECAMChroma(lineBuffer, line, row)
			subcarrierPhase += phaseIncrement * float64(e.lineSamples)
		}
		vToggle *= -1.0
	}
	e.frames.Add(1)
	metrics.FramesGenerated.WithLabelValues(e.timing.Signal.String()).Inc()
}

// Frames returns how many frames have been generated.
func (e *Encoder) Frames() uint64 {
	return e.frames.Load()
}

func (e *Encoder) generateLumaLine(lineBuffer []float64, kind lineKind, row int) {
	for s := range lineBuffer {
		lineBuffer[s] = levelBlanking
	}
	halfLine := e.lineSamples / 2

	switch kind {
	case lineEqualizing:
		for s := 0; s < e.eqPulseSamples; s++ {
			lineBuffer[s], lineBuffer[halfLine+s] = levelSync, levelSync
		}
		return
	case lineVSync:
		for s := 0; s < e.vSyncPulseSamples; s++ {
			lineBuffer[s], lineBuffer[halfLine+s] = levelSync, levelSync
		}
		return
	case lineHalfSync:
		for s := halfLine; s < halfLine+e.hSyncSamples; s++ {
			lineBuffer[s] = levelSync
		}
	}

	for s := 0; s < e.hSyncSamples; s++ {
		lineBuffer[s] = levelSync
	}
	if kind != lineActive {
		return
	}
	for s := 0; s < e.activeSamples; s++ {
		r, g, b := e.pixelRGB(row, s)
		lineBuffer[e.activeStartSamples+s] = e.luma(r, g, b)
	}
}

func (e *Encoder) addNTSCChroma(lineBuffer []float64, row int, phase, inc float64) float64 {
	activeEnd := e.activeStartSamples + e.activeSamples
	for s := 0; s < e.lineSamples; s++ {
		if s >= e.burstStartSamples && s < e.burstEndSamples {
			lineBuffer[s] += burstAmplitude * math.Sin(phase+math.Pi)
		} else if s >= e.activeStartSamples && s < activeEnd {
			r, g, b := e.pixelRGB(row, s-e.activeStartSamples)
			i, q := e.chromaIQ(r, g, b)
			lineBuffer[s] += i*math.Cos(phase) + q*math.Sin(phase)
		}
		phase += inc
	}
	return phase
}

func (e *Encoder) addPALChroma(lineBuffer []float64, line, row int, vToggle, phase, inc float64) float64 {
	burstPhaseOffset := 135.0 * (math.Pi / 180.0)
	if line%2 == 0 {
		burstPhaseOffset = -burstPhaseOffset
	}
	activeEnd := e.activeStartSamples + e.activeSamples
	for s := 0; s < e.lineSamples; s++ {
		if s >= e.burstStartSamples && s < e.burstEndSamples {
			lineBuffer[s] += burstAmplitude * math.Sin(phase+burstPhaseOffset)
		} else if s >= e.activeStartSamples && s < activeEnd {
			r, g, b := e.pixelRGB(row, s-e.activeStartSamples)
			u, v := e.chromaUV(r, g, b)
			lineBuffer[s] += u*math.Sin(phase) + (v*vToggle)*math.Cos(phase)
		}
		phase += inc
	}
	return phase
}

// addSECAMChroma frequency-modulates Db on odd lines and Dr on even lines.
func (e *Encoder) addSECAMChroma(lineBuffer []float64, line, row int) {
	rest, deviation := secamDbRest, secamDbDeviation
	if line%2 == 0 {
		rest, deviation = secamDrRest, secamDrDeviation
	}
	var phase float64
	for s := 0; s < e.activeSamples; s++ {
		r, g, b := e.pixelRGB(row, s)
		db, dr := chromaDbDr(r, g, b)
		d := db
		if line%2 == 0 {
			d = dr
		}
		phase += 2.0 * math.Pi * (rest + deviation*d) / e.sampleRate
		lineBuffer[e.activeStartSamples+s] += secamAmplitude * math.Cos(phase)
	}
}

// pixelRGB returns the source pixel under active sample s of picture row.
// The caller holds the raw lock.
func (e *Encoder) pixelRGB(row, s int) (r, g, b float64) {
	pixelY := row * FrameHeight / e.timing.ActiveLines
	pixelX := int(float64(s) / float64(e.activeSamples) * FrameWidth)
	if pixelY < 0 || pixelY >= FrameHeight || pixelX < 0 || pixelX >= FrameWidth {
		return 0, 0, 0
	}
	i := (pixelY*FrameWidth + pixelX) * 3
	return float64(e.rawFrameBuffer[i]), float64(e.rawFrameBuffer[i+1]), float64(e.rawFrameBuffer[i+2])
}

func (e *Encoder) luma(r, g, b float64) float64 {
	y := 0.299*r + 0.587*g + 0.114*b
	return e.timing.LevelBlack + y/255.0*(levelWhite-e.timing.LevelBlack)
}

func (e *Encoder) chromaIQ(r, g, b float64) (i, q float64) {
	span := levelWhite - e.timing.LevelBlack
	i = (0.596*r - 0.274*g - 0.322*b) / 255.0 * span
	q = (0.211*r - 0.523*g + 0.312*b) / 255.0 * span
	return i, q
}

func (e *Encoder) chromaUV(r, g, b float64) (u, v float64) {
	span := levelWhite - e.timing.LevelBlack
	u = (-0.147*r - 0.289*g + 0.436*b) / 255.0 * span * 0.493
	v = (0.615*r - 0.515*g - 0.100*b) / 255.0 * span * 0.877
	return u, v
}

// chromaDbDr returns the SECAM colour differences normalised to [-1, 1].
func chromaDbDr(r, g, b float64) (db, dr float64) {
	y := 0.299*r + 0.587*g + 0.114*b
	db = 1.505 * (b - y) / 255.0 / 1.333
	dr = -1.902 * (r - y) / 255.0 / 1.333
	return db, dr
}

func (e *Encoder) Timing() Timing { return e.timing }

func (e *Encoder) SampleRate() float64 { return e.sampleRate }

func (e *Encoder) FillTestPattern() {
	e.rawFrameMutex.Lock()
	FillColorBars(e.rawFrameBuffer)
	e.rawFrameMutex.Unlock()
}

func (e *Encoder) LockFrame()             { e.frameMutex.Lock() }
func (e *Encoder) UnlockFrame()           { e.frameMutex.Unlock() }
func (e *Encoder) RLockFrame()            { e.frameMutex.RLock() }
func (e *Encoder) RUnlockFrame()          { e.frameMutex.RUnlock() }
func (e *Encoder) LockRaw()               { e.rawFrameMutex.Lock() }
func (e *Encoder) UnlockRaw()             { e.rawFrameMutex.Unlock() }
func (e *Encoder) FrameBuffer() []float64 { return e.frameBuffer }
func (e *Encoder) RawFrameBuffer() []byte { return e.rawFrameBuffer }
