package frontend

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextAuthorizer(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		allowed bool
	}{
		{
			name:    "no caller",
			ctx:     context.Background(),
			allowed: false,
		},
		{
			name:    "caller without permission",
			ctx:     WithCaller(context.Background(), Caller{Name: "guest", Permissions: []string{"other"}}),
			allowed: false,
		},
		{
			name: "caller with permission",
			ctx: WithCaller(context.Background(), Caller{
				Name:        "operator",
				Permissions: []string{"other", PermissionAccessTVTuner},
			}),
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewAnalogBuilder(tt.ctx, ContextAuthorizer{})
			if tt.allowed {
				require.NoError(t, err)
				assert.NotNil(t, b)
				return
			}
			assert.ErrorIs(t, err, ErrPermissionDenied)
			assert.Nil(t, b)
		})
	}
}

func TestCallerFrom(t *testing.T) {
	_, ok := CallerFrom(context.Background())
	assert.False(t, ok)

	ctx := WithCaller(context.Background(), Caller{Name: "op"})
	c, ok := CallerFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "op", c.Name)
	assert.False(t, c.Holds(PermissionAccessTVTuner))
}

func TestDeniedErrorKeepsCause(t *testing.T) {
	cause := errors.New("token expired")
	_, err := NewAnalogBuilder(context.Background(), AuthorizerFunc(func(context.Context) error {
		return cause
	}))
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.ErrorIs(t, err, cause)
}

func TestDeviceAuthorizer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("device checks are unix only")
	}

	dir := t.TempDir()
	node := filepath.Join(dir, "usb-node")
	require.NoError(t, os.WriteFile(node, nil, 0o600))

	_, err := NewAnalogBuilder(context.Background(), DeviceAuthorizer{Paths: []string{node}})
	assert.NoError(t, err)

	missing := filepath.Join(dir, "missing")
	_, err = NewAnalogBuilder(context.Background(), DeviceAuthorizer{Paths: []string{missing}})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = NewAnalogBuilder(context.Background(), DeviceAuthorizer{})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
