//go:build !unix

package frontend

import (
	"context"
	"fmt"
)

// DeviceAuthorizer is only supported on unix systems. Elsewhere it denies.
type DeviceAuthorizer struct {
	Paths []string
}

func (d DeviceAuthorizer) CheckTunerAccess(context.Context) error {
	return fmt.Errorf("device access checks unsupported on this platform: %w", ErrPermissionDenied)
}
