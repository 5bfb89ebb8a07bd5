package frontend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authorizedBuilder(t *testing.T) *AnalogBuilder {
	t.Helper()
	b, err := NewAnalogBuilder(context.Background(), AllowAll)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

func TestAnalogBuilderPALBGNICAM(t *testing.T) {
	s := authorizedBuilder(t).
		SetSignalType(SignalTypePAL).
		SetSifStandard(SifBGNICAM).
		Build()

	assert.Equal(t, SignalTypePAL, s.SignalType())
	assert.Equal(t, SifBGNICAM, s.SifStandard())
	assert.Equal(t, TypeAnalog, s.Type())
}

func TestAnalogBuilderDefaults(t *testing.T) {
	s := authorizedBuilder(t).Build()

	assert.Equal(t, SignalTypeUndefined, s.SignalType())
	assert.Equal(t, SifUndefined, s.SifStandard())
	assert.Equal(t, 0, s.Frequency())
	assert.Equal(t, TypeAnalog, s.Type())
}

func TestAnalogBuilderUnauthorized(t *testing.T) {
	deny := AuthorizerFunc(func(context.Context) error {
		return errors.New("nope")
	})

	b, err := NewAnalogBuilder(context.Background(), deny)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Nil(t, b)

	b, err = NewAnalogBuilder(context.Background(), nil)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Nil(t, b)
}

func TestAnalogBuilderLastSetWins(t *testing.T) {
	s := authorizedBuilder(t).
		SetSignalType(SignalTypeNTSC).
		SetSignalType(SignalTypeSECAM).
		SetSifStandard(SifM).
		SetSifStandard(SifLPrime).
		SetFrequency(55_250_000).
		Build()

	assert.Equal(t, SignalTypeSECAM, s.SignalType())
	assert.Equal(t, SifLPrime, s.SifStandard())
	assert.Equal(t, 55_250_000, s.Frequency())
}

func TestAnalogBuilderAllEnumerantPairs(t *testing.T) {
	b := authorizedBuilder(t)
	for _, st := range SignalTypes() {
		for _, sif := range SifStandards() {
			s := b.SetSignalType(st).SetSifStandard(sif).Build()
			assert.Equal(t, st, s.SignalType())
			assert.Equal(t, sif, s.SifStandard())
			assert.Equal(t, TypeAnalog, s.Type())
		}
	}
}

func TestAnalogBuilderAcceptsOutOfDomainValues(t *testing.T) {
	s := authorizedBuilder(t).
		SetSignalType(SignalType(0x7fff)).
		SetSifStandard(SifStandard(-3)).
		Build()

	assert.Equal(t, SignalType(0x7fff), s.SignalType())
	assert.Equal(t, SifStandard(-3), s.SifStandard())
}

func TestAnalogBuildSnapshotsAreIsolated(t *testing.T) {
	b := authorizedBuilder(t).
		SetFrequency(471_250_000).
		SetSignalType(SignalTypePAL).
		SetSifStandard(SifI)
	first := b.Build()

	b.SetFrequency(175_250_000).SetSignalType(SignalTypeNTSC).SetSifStandard(SifMBTSC)
	second := b.Build()

	assert.Equal(t, 471_250_000, first.Frequency())
	assert.Equal(t, SignalTypePAL, first.SignalType())
	assert.Equal(t, SifI, first.SifStandard())

	assert.Equal(t, 175_250_000, second.Frequency())
	assert.Equal(t, SignalTypeNTSC, second.SignalType())
	assert.Equal(t, SifMBTSC, second.SifStandard())
	assert.NotSame(t, first, second)
}

func TestIndependentBuildersAreUnrelated(t *testing.T) {
	a := authorizedBuilder(t).SetSignalType(SignalTypePALM)
	b := authorizedBuilder(t).SetSignalType(SignalTypeNTSC443)

	sa := a.Build()
	b.SetSifStandard(SifMA2)
	sb := b.Build()

	assert.Equal(t, SignalTypePALM, sa.SignalType())
	assert.Equal(t, SifUndefined, sa.SifStandard())
	assert.Equal(t, SignalTypeNTSC443, sb.SignalType())
	assert.Equal(t, SifMA2, sb.SifStandard())
}

func TestAnalogSettingsImplementsSettings(t *testing.T) {
	var s Settings = authorizedBuilder(t).SetFrequency(62_250_000).Build()
	assert.Equal(t, TypeAnalog, s.Type())
	assert.Equal(t, 62_250_000, s.Frequency())
}
