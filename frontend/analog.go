package frontend

import (
	"context"
	"fmt"
)

// AnalogSettings are the frontend settings for an analog tuner.
type AnalogSettings struct {
	base
	signalType  SignalType
	sifStandard SifStandard
}

// Type always reports TypeAnalog.
func (s *AnalogSettings) Type() Type {
	return TypeAnalog
}

// SignalType returns the analog signal type.
func (s *AnalogSettings) SignalType() SignalType {
	return s.signalType
}

// SifStandard returns the Standard Interchange Format (SIF).
func (s *AnalogSettings) SifStandard() SifStandard {
	return s.sifStandard
}

func (s *AnalogSettings) String() string {
	return fmt.Sprintf("analog{freq=%d signal=%s sif=%s}", s.frequency, s.signalType, s.sifStandard)
}

// AnalogBuilder stages the fields of an AnalogSettings. It is meant for a
// single goroutine; callers sharing one must lock around it.
type AnalogBuilder struct {
	frequency   int
	signalType  SignalType
	sifStandard SifStandard
}

// NewAnalogBuilder returns a builder once auth grants tuner access to the
// caller carried by ctx. Otherwise it returns an error wrapping
// ErrPermissionDenied and no builder.
func NewAnalogBuilder(ctx context.Context, auth Authorizer) (*AnalogBuilder, error) {
	if err := checkTunerAccess(ctx, auth); err != nil {
		return nil, err
	}
	return &AnalogBuilder{}, nil
}

// SetFrequency sets the tuning frequency in Hz.
func (b *AnalogBuilder) SetFrequency(frequency int) *AnalogBuilder {
	b.frequency = frequency
	return b
}

// SetSignalType sets the analog signal type. The value is not checked here;
// the tuner rejects what it cannot handle.
func (b *AnalogBuilder) SetSignalType(signalType SignalType) *AnalogBuilder {
	b.signalType = signalType
	return b
}

// SetSifStandard sets the Standard Interchange Format (SIF).
func (b *AnalogBuilder) SetSifStandard(sifStandard SifStandard) *AnalogBuilder {
	b.sifStandard = sifStandard
	return b
}

// Build snapshots the staged fields into a new AnalogSettings.
func (b *AnalogBuilder) Build() *AnalogSettings {
	return &AnalogSettings{
		base:        base{frequency: b.frequency},
		signalType:  b.signalType,
		sifStandard: b.sifStandard,
	}
}
