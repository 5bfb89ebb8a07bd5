package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"analogtv/frontend"
	"analogtv/tuner"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan(t *testing.T, st frontend.SignalType, sif frontend.SifStandard) tuner.Plan {
	t.Helper()
	b, err := frontend.NewAnalogBuilder(context.Background(), frontend.AllowAll)
	require.NoError(t, err)
	p, err := tuner.Resolve(b.SetFrequency(471_250_000).SetSignalType(st).SetSifStandard(sif).Build(), tuner.SDRCapabilities)
	require.NoError(t, err)
	return p
}

func TestRenderPlan(t *testing.T) {
	out := RenderPlan("Plan", testPlan(t, frontend.SignalTypePAL, frontend.SifBGNICAM))
	assert.Contains(t, out, "471.250 MHz")
	assert.Contains(t, out, "BG_NICAM")
	assert.Contains(t, out, "476.7500 MHz")
	assert.Contains(t, out, "Sound 2")

	out = RenderPlan("Plan", testPlan(t, frontend.SignalTypeAuto, frontend.SifUndefined))
	assert.Contains(t, out, "NTSC (from AUTO)")
	assert.Contains(t, out, "none")
}

func TestRenderEnumerants(t *testing.T) {
	out := RenderEnumerants()
	assert.Contains(t, out, "SECAM")
	assert.Contains(t, out, "L_PRIME")
	assert.Contains(t, out, "0x20000")
}

func TestStatusModel(t *testing.T) {
	var frames uint64
	m := NewStatus(testPlan(t, frontend.SignalTypeNTSC, frontend.SifM), func() uint64 { return frames })
	require.NotNil(t, m.Init())

	frames = 30
	next, cmd := m.Update(tickMsg(m.now.Add(time.Second)))
	require.NotNil(t, cmd)
	sm := next.(StatusModel)
	assert.Equal(t, uint64(30), sm.count)
	assert.InDelta(t, 30.0, sm.rate, 1e-9)
	assert.Contains(t, sm.View(), "frames 30")

	_, cmd = sm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestLiveReturnsTransmitFailure(t *testing.T) {
	txFailed := errors.New("SetFreq failed")
	viewStopped := false

	done := make(chan error, 1)
	go func() {
		done <- Live(context.Background(),
			func(context.Context) error { return txFailed },
			func(ctx context.Context) error {
				<-ctx.Done()
				viewStopped = true
				return tea.ErrProgramKilled
			},
		)
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, txFailed)
		assert.True(t, viewStopped)
	case <-time.After(5 * time.Second):
		t.Fatal("Live kept waiting after the transmitter failed")
	}
}

func TestLiveViewQuitStopsTransmit(t *testing.T) {
	err := Live(context.Background(),
		func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
		func(context.Context) error { return nil },
	)
	assert.NoError(t, err)
}

func TestLiveParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Live(ctx,
		func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
		func(ctx context.Context) error {
			<-ctx.Done()
			return tea.ErrProgramKilled
		},
	)
	assert.NoError(t, err)
}
