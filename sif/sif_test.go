package sif

import (
	"testing"

	"analogtv/frontend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryConcreteStandardHasAPlan(t *testing.T) {
	for _, s := range frontend.SifStandards() {
		p, ok := Lookup(s)
		if s == frontend.SifUndefined || s == frontend.SifAuto {
			assert.False(t, ok, s.String())
			continue
		}
		require.True(t, ok, s.String())
		assert.Equal(t, s, p.Standard)
		assert.NotZero(t, p.Primary.OffsetHz)
	}
}

func TestPlanFrequencies(t *testing.T) {
	p, ok := Lookup(frontend.SifBGNICAM)
	require.True(t, ok)
	primary, secondary := p.Frequencies(471_250_000)
	assert.InDelta(t, 476_750_000, primary, 0.5)
	assert.InDelta(t, 477_100_000, secondary, 0.5)
	assert.Equal(t, NICAM, p.Stereo)
	assert.Equal(t, DQPSK, p.Secondary.Modulation)

	p, ok = Lookup(frontend.SifMBTSC)
	require.True(t, ok)
	primary, secondary = p.Frequencies(55_250_000)
	assert.InDelta(t, 59_750_000, primary, 0.5)
	assert.Zero(t, secondary)

	p, ok = Lookup(frontend.SifLPrime)
	require.True(t, ok)
	primary, _ = p.Frequencies(60_500_000)
	assert.InDelta(t, 54_000_000, primary, 0.5)
}

func TestPositiveVideo(t *testing.T) {
	for _, s := range []frontend.SifStandard{frontend.SifL, frontend.SifLNICAM, frontend.SifLPrime} {
		p, _ := Lookup(s)
		assert.True(t, p.PositiveVideo(), s.String())
		assert.Equal(t, AM, p.Primary.Modulation)
	}
	p, _ := Lookup(frontend.SifDK)
	assert.False(t, p.PositiveVideo())
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		signal frontend.SignalType
		sif    frontend.SifStandard
		want   bool
	}{
		{frontend.SignalTypePAL, frontend.SifBG, true},
		{frontend.SignalTypePAL, frontend.SifINICAM, true},
		{frontend.SignalTypePAL, frontend.SifM, false},
		{frontend.SignalTypeNTSC, frontend.SifMBTSC, true},
		{frontend.SignalTypeNTSC, frontend.SifBG, false},
		{frontend.SignalTypePALM, frontend.SifMA2, true},
		{frontend.SignalTypeSECAM, frontend.SifLPrime, true},
		{frontend.SignalTypeSECAM, frontend.SifI, false},
		{frontend.SignalTypeAuto, frontend.SifM, false},
		{frontend.SignalTypePAL, frontend.SifAuto, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compatible(tt.signal, tt.sif), "%s/%s", tt.signal, tt.sif)
	}
}

func TestDefaultIsCompatible(t *testing.T) {
	for _, st := range frontend.SignalTypes() {
		d := Default(st)
		if st == frontend.SignalTypeUndefined || st == frontend.SignalTypeAuto {
			assert.Equal(t, frontend.SifUndefined, d)
			continue
		}
		assert.True(t, Compatible(st, d), st.String())
	}
}

func TestStereoString(t *testing.T) {
	assert.Equal(t, "NICAM", NICAM.String())
	assert.Equal(t, "mono", Mono.String())
	assert.Equal(t, "unknown", Stereo(7).String())
	assert.Equal(t, "unknown", Stereo(-1).String())
}
