package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, "127.0.0.1:0", zerolog.Nop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServeBadAddress(t *testing.T) {
	err := Serve(context.Background(), "not-an-address", zerolog.Nop())
	assert.Error(t, err)
}

func TestFramesGeneratedBySignal(t *testing.T) {
	assert.NotPanics(t, func() {
		FramesGenerated.WithLabelValues("PAL").Inc()
		TunedFrequency.Set(471_250_000)
	})
}
