package video

import (
	"fmt"

	"analogtv/frontend"
)

// Colour is the chroma encoding scheme of a signal type.
type Colour int

const (
	ColourNTSC Colour = iota
	ColourPAL
	ColourSECAM
)

func (c Colour) String() string {
	switch c {
	case ColourNTSC:
		return "NTSC"
	case ColourPAL:
		return "PAL"
	case ColourSECAM:
		return "SECAM"
	}
	return "unknown"
}

// Timing holds the line structure and levels of a composite video signal.
// Durations are in seconds, levels in IRE.
type Timing struct {
	Signal      frontend.SignalType
	Colour      Colour
	Lines       int
	ActiveLines int
	FrameRate   float64
	Subcarrier  float64

	HSync       float64
	VSyncPulse  float64
	EqPulse     float64
	BurstStart  float64
	BurstLength float64
	ActiveStart float64
	Active      float64

	LevelBlack float64
}

// Shared line timings of the two scanning systems.
var (
	timing525 = Timing{
		Lines:       525,
		ActiveLines: 480,
		FrameRate:   30000.0 / 1001.0,
		HSync:       4.7e-6,
		VSyncPulse:  27.1e-6,
		EqPulse:     2.3e-6,
		BurstStart:  5.6e-6,
		BurstLength: 2.5e-6,
		ActiveStart: 10.7e-6,
		Active:      52.6e-6,
	}
	timing625 = Timing{
		Lines:       625,
		ActiveLines: 576,
		FrameRate:   25.0,
		HSync:       4.7e-6,
		VSyncPulse:  27.3e-6,
		EqPulse:     2.35e-6,
		BurstStart:  5.6e-6,
		BurstLength: 2.25e-6,
		ActiveStart: 10.5e-6,
		Active:      52.0e-6,
	}
)

func derive(base Timing, signal frontend.SignalType, colour Colour, fsc, black float64) Timing {
	t := base
	t.Signal = signal
	t.Colour = colour
	t.Subcarrier = fsc
	t.LevelBlack = black
	if colour == ColourSECAM {
		t.BurstLength = 0
	}
	return t
}

var timings = map[frontend.SignalType]Timing{
	frontend.SignalTypeNTSC:    derive(timing525, frontend.SignalTypeNTSC, ColourNTSC, 3579545.4545, 7.5),
	frontend.SignalTypeNTSC443: derive(timing525, frontend.SignalTypeNTSC443, ColourNTSC, 4433618.75, 7.5),
	frontend.SignalTypePALM:    derive(timing525, frontend.SignalTypePALM, ColourPAL, 3575611.49, 7.5),
	frontend.SignalTypePAL60:   derive(timing525, frontend.SignalTypePAL60, ColourPAL, 4433618.75, 0),
	frontend.SignalTypePAL:     derive(timing625, frontend.SignalTypePAL, ColourPAL, 4433618.75, 0),
	frontend.SignalTypePALN:    derive(timing625, frontend.SignalTypePALN, ColourPAL, 3582056.25, 7.5),
	frontend.SignalTypeSECAM:   derive(timing625, frontend.SignalTypeSECAM, ColourSECAM, 4250000.0, 0),
}

// TimingFor returns the timing of a concrete signal type. AUTO and UNDEFINED
// must be resolved by the caller first.
func TimingFor(signal frontend.SignalType) (Timing, error) {
	t, ok := timings[signal]
	if !ok {
		return Timing{}, fmt.Errorf("no video timing for signal type %s", signal)
	}
	return t, nil
}

// LineDuration is the duration of one scan line in seconds.
func (t Timing) LineDuration() float64 {
	return 1.0 / (t.FrameRate * float64(t.Lines))
}

// SamplesPerLine is the whole number of samples in a line at sampleRate.
func (t Timing) SamplesPerLine(sampleRate float64) int {
	return int(t.LineDuration() * sampleRate)
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineActive
	lineEqualizing
	lineVSync
	lineHalfSync
)

// layout returns what a 1-based frame line carries and, for active lines, the
// interlaced picture row it shows.
func (t Timing) layout(line int) (lineKind, int) {
	if t.Lines == 525 {
		inField := line
		if line > t.Lines/2 {
			inField = line - t.Lines/2
		}
		switch {
		case inField >= 1 && inField <= 3, inField >= 7 && inField <= 9:
			return lineEqualizing, -1
		case inField >= 4 && inField <= 6:
			return lineVSync, -1
		}
		switch {
		case line >= 22 && line <= 262:
			return lineActive, (line - 22) * 2
		case line >= 285 && line <= 524:
			return lineActive, (line-285)*2 + 1
		}
		return lineBlank, -1
	}

	switch {
	case line <= 2, line >= 313 && line <= 314:
		return lineHalfSync, -1
	case line >= 24 && line <= 310:
		return lineActive, (line - 24) * 2
	case line >= 337 && line <= 623:
		return lineActive, (line-337)*2 + 1
	}
	return lineBlank, -1
}
