package frontend

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// PermissionAccessTVTuner is the permission a caller must hold to configure a tuner.
const PermissionAccessTVTuner = "analogtv.permission.ACCESS_TV_TUNER"

// ErrPermissionDenied is returned when the caller may not access the tuner.
var ErrPermissionDenied = errors.New("permission denied")

// Authorizer decides whether the caller identified by ctx may access the tuner.
// A nil return grants access.
type Authorizer interface {
	CheckTunerAccess(ctx context.Context) error
}

// AuthorizerFunc adapts a plain function to Authorizer.
type AuthorizerFunc func(ctx context.Context) error

func (f AuthorizerFunc) CheckTunerAccess(ctx context.Context) error {
	return f(ctx)
}

// AllowAll grants every caller.
var AllowAll Authorizer = AuthorizerFunc(func(context.Context) error { return nil })

// Caller is the identity attached to a request context.
type Caller struct {
	Name        string
	Permissions []string
}

// Holds reports whether the caller was granted permission.
func (c Caller) Holds(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}

type callerKey struct{}

// WithCaller returns a copy of ctx carrying c.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the caller stored in ctx, if any.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}

// ContextAuthorizer grants callers whose context identity holds
// PermissionAccessTVTuner.
type ContextAuthorizer struct{}

func (ContextAuthorizer) CheckTunerAccess(ctx context.Context) error {
	c, ok := CallerFrom(ctx)
	if !ok {
		return fmt.Errorf("no caller in context: %w", ErrPermissionDenied)
	}
	if !c.Holds(PermissionAccessTVTuner) {
		return fmt.Errorf("caller %q lacks %s: %w", c.Name, PermissionAccessTVTuner, ErrPermissionDenied)
	}
	return nil
}

// checkTunerAccess runs auth and makes sure every refusal matches
// ErrPermissionDenied, whatever error the authorizer chose to return.
func checkTunerAccess(ctx context.Context, auth Authorizer) error {
	if auth == nil {
		return fmt.Errorf("no authorizer: %w", ErrPermissionDenied)
	}
	err := auth.CheckTunerAccess(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrPermissionDenied) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
}
