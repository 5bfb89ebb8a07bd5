package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHALValues(t *testing.T) {
	assert.Equal(t, 1, int(TypeAnalog))
	assert.Equal(t, 9, int(TypeISDBT))

	signal := map[SignalType]int{
		SignalTypeUndefined: 0,
		SignalTypeAuto:      1,
		SignalTypePAL:       2,
		SignalTypePALM:      4,
		SignalTypePALN:      8,
		SignalTypePAL60:     16,
		SignalTypeNTSC:      32,
		SignalTypeNTSC443:   64,
		SignalTypeSECAM:     128,
	}
	for s, want := range signal {
		assert.Equal(t, want, int(s), s.String())
	}

	assert.Equal(t, 0, int(SifUndefined))
	assert.Equal(t, 1<<3, int(SifBGNICAM))
	assert.Equal(t, 1<<11, int(SifM))
	assert.Equal(t, 1<<17, int(SifLPrime))
}

func TestEnumerantsAreDistinctFlags(t *testing.T) {
	var seen SignalType
	for _, s := range SignalTypes()[1:] {
		assert.Zero(t, seen&s, s.String())
		seen |= s
	}

	var seenSif SifStandard
	for _, s := range SifStandards()[1:] {
		assert.Zero(t, seenSif&s, s.String())
		seenSif |= s
	}
	assert.Len(t, SignalTypes(), 9)
	assert.Len(t, SifStandards(), 19)
}

func TestStringAndParse(t *testing.T) {
	for _, s := range SignalTypes() {
		got, err := ParseSignalType(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, s := range SifStandards() {
		got, err := ParseSifStandard(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseSignalType(" pal-60 ")
	require.NoError(t, err)
	assert.Equal(t, SignalTypePAL60, got)

	sif, err := ParseSifStandard("dk3-a2")
	require.NoError(t, err)
	assert.Equal(t, SifDK3A2, sif)

	_, err = ParseSignalType("hdmi")
	assert.Error(t, err)
	_, err = ParseSifStandard("")
	assert.Error(t, err)

	assert.Equal(t, "SignalType(0x300)", SignalType(0x300).String())
	assert.Equal(t, "ANALOG", TypeAnalog.String())
	assert.Equal(t, "Type(42)", Type(42).String())
}

func TestCapabilities(t *testing.T) {
	caps := AnalogCapabilities{
		SignalTypeCap:  SignalTypeMask(SignalTypePAL, SignalTypeNTSC),
		SifStandardCap: SifStandardMask(SifBG, SifM),
	}

	assert.True(t, caps.SupportsSignalType(SignalTypePAL))
	assert.True(t, caps.SupportsSignalType(SignalTypeNTSC))
	assert.False(t, caps.SupportsSignalType(SignalTypeSECAM))
	assert.False(t, caps.SupportsSignalType(SignalTypeUndefined))

	assert.True(t, caps.SupportsSifStandard(SifM))
	assert.False(t, caps.SupportsSifStandard(SifI))
	assert.False(t, caps.SupportsSifStandard(SifUndefined))
}
