package display

import (
	"testing"

	"analogtv/frontend"
	"analogtv/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	tm, err := video.TimingFor(frontend.SignalTypeSECAM)
	require.NoError(t, err)

	args := Args(tm, "SECAM Receiver")
	assert.Contains(t, args, "540x480")
	assert.Contains(t, args, "25.000000")
	assert.Contains(t, args, "SECAM Receiver")
}
