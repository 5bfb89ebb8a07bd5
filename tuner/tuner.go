// Package tuner is the hardware side of the frontend settings: it checks
// settings against what the SDR path can do and turns them into a plan.
package tuner

import (
	"errors"
	"fmt"

	"analogtv/frontend"
	"analogtv/sif"
	"analogtv/video"
)

var (
	// ErrWrongType is returned for settings that are not analog.
	ErrWrongType = errors.New("not analog frontend settings")
	// ErrUnsupported is returned for values the frontend cannot handle.
	ErrUnsupported = errors.New("unsupported frontend setting")
)

// DefaultSignalType is what AUTO resolves to.
const DefaultSignalType = frontend.SignalTypeNTSC

// SDRCapabilities is what the software encoder and decoder support.
var SDRCapabilities = frontend.AnalogCapabilities{
	SignalTypeCap: frontend.SignalTypeMask(
		frontend.SignalTypeAuto,
		frontend.SignalTypePAL,
		frontend.SignalTypePALM,
		frontend.SignalTypePALN,
		frontend.SignalTypePAL60,
		frontend.SignalTypeNTSC,
		frontend.SignalTypeNTSC443,
		frontend.SignalTypeSECAM,
	),
	SifStandardCap: frontend.SifStandardMask(frontend.SifStandards()...),
}

// Plan is a validated, fully resolved tuning request.
type Plan struct {
	Settings    *frontend.AnalogSettings
	Signal      frontend.SignalType
	FrequencyHz int
	Timing      video.Timing
	// Sound is nil when the settings leave the SIF standard undefined.
	Sound *sif.Plan
}

// PositiveVideo reports whether the vision carrier uses positive modulation.
func (p Plan) PositiveVideo() bool {
	return p.Sound != nil && p.Sound.PositiveVideo()
}

func (p Plan) String() string {
	sound := "none"
	if p.Sound != nil {
		sound = p.Sound.Standard.String()
	}
	return fmt.Sprintf("%s %d lines @ %.3f MHz, sound %s", p.Signal, p.Timing.Lines, float64(p.FrequencyHz)/1e6, sound)
}

// Resolve validates settings against caps and resolves AUTO values.
// An UNDEFINED signal type is rejected; an UNDEFINED SIF standard means no
// sound carrier.
func Resolve(settings frontend.Settings, caps frontend.AnalogCapabilities) (Plan, error) {
	if settings == nil {
		return Plan{}, fmt.Errorf("%w: no settings", ErrWrongType)
	}
	analog, ok := settings.(*frontend.AnalogSettings)
	if !ok || analog == nil || settings.Type() != frontend.TypeAnalog {
		return Plan{}, fmt.Errorf("%w: got %T", ErrWrongType, settings)
	}
	if analog.Frequency() <= 0 {
		return Plan{}, fmt.Errorf("%w: frequency %d Hz", ErrUnsupported, analog.Frequency())
	}

	signal := analog.SignalType()
	if !caps.SupportsSignalType(signal) {
		return Plan{}, fmt.Errorf("%w: signal type %s", ErrUnsupported, signal)
	}
	if signal == frontend.SignalTypeAuto {
		signal = DefaultSignalType
		if !caps.SupportsSignalType(signal) {
			return Plan{}, fmt.Errorf("%w: AUTO resolves to %s", ErrUnsupported, signal)
		}
	}

	timing, err := video.TimingFor(signal)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	plan := Plan{
		Settings:    analog,
		Signal:      signal,
		FrequencyHz: analog.Frequency(),
		Timing:      timing,
	}

	standard := analog.SifStandard()
	if standard == frontend.SifUndefined {
		return plan, nil
	}
	if !caps.SupportsSifStandard(standard) {
		return Plan{}, fmt.Errorf("%w: SIF standard %s", ErrUnsupported, standard)
	}
	if standard == frontend.SifAuto {
		standard = sif.Default(signal)
	}
	if !sif.Compatible(signal, standard) {
		return Plan{}, fmt.Errorf("%w: SIF standard %s with %s", ErrUnsupported, standard, signal)
	}
	sound, _ := sif.Lookup(standard)
	plan.Sound = &sound
	return plan, nil
}
