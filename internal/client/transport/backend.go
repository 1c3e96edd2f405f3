package transport

import (
	"context"
	"time"
)

// Backend executes one fully shaped request and returns the normalized
// response. Backends report every HTTP status as a Response; only failures
// of the call itself (network, bridge, cancellation) return an error, and
// that error is always a *Error with Status 0. Mapping failure statuses to
// errors is the response stage's job, so the policy is identical for all
// three backends.
type Backend interface {
	Execute(ctx context.Context, req *WireRequest) (*Response, error)
}

// Selector picks the backend for the current environment. It is invoked
// once per call.
type Selector func() Backend

// NewSelector builds the standard selector over the three production
// backends, re-detecting the environment on every call.
func NewSelector(timeout time.Duration) Selector {
	web := NewWebBackend(timeout)
	mobile := NewBridgeABackend(NewHTTPBridgeAInvoker(timeout))
	desktop := NewBridgeBBackend(NewHTTPBridgeBInvoker(timeout))

	return func() Backend {
		switch DetectEnv() {
		case EnvMobileShell:
			return mobile
		case EnvDesktopShell:
			return desktop
		default:
			return web
		}
	}
}
