package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupAndComponent(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "debug")

	logger := Component("tuner")
	logger.Debug().Int("lines", 625).Msg("resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tuner", entry["component"])
	assert.Equal(t, "resolved", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 625, entry["lines"])
}

func TestSetupUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "chatty")

	logger := Component("x")
	logger.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Info().Msg("shown")
	assert.NotZero(t, buf.Len())
}
