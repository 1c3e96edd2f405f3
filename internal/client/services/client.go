// Package services contains the API services the UI layers consume:
// monitors, events, and host operations, all built on the authenticated
// client.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pliablepixels/zmng/internal/client/session"
	"github.com/pliablepixels/zmng/internal/client/transport"
)

// APIClient is the slice of the api.Client surface the services need.
// Taking the interface keeps services testable with fakes.
type APIClient interface {
	Do(ctx context.Context, d *transport.Descriptor) (*transport.Response, error)
	Get(ctx context.Context, path string, params map[string]string) (*transport.Response, error)
	Delete(ctx context.Context, path string, params map[string]string) (*transport.Response, error)
	Login(ctx context.Context, username, password string) (*session.Grant, error)
	Logout(ctx context.Context) error
}

// decode re-marshals an already-normalized response body into a typed
// value. Payload shape validation beyond JSON well-formedness belongs to
// the schema-validator collaborator, not this layer.
func decode(data any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding response payload: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding response payload: %w", err)
	}
	return nil
}
