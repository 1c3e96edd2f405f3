package api

import (
	"sync"

	"github.com/pliablepixels/zmng/internal/common"
)

// Registry holds the process-wide active client, swapped on profile switch.
// It is an explicit, injectable object so tests can construct isolated
// instances; a package-level default mirrors the app's single active
// connection.
type Registry struct {
	mu     sync.RWMutex
	client *Client
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Set replaces the active client.
func (r *Registry) Set(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.client = c
}

// Active returns the active client, or common.ErrNotInitialized when none
// has been set. Callers must treat that as a programming-contract
// violation, not a recoverable runtime condition.
func (r *Registry) Active() (*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.client == nil {
		return nil, common.ErrNotInitialized
	}
	return r.client, nil
}

// Reset clears the active client (logout / full profile teardown).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.client = nil
}

var defaultRegistry = NewRegistry()

// SetActive replaces the process-wide active client.
func SetActive(c *Client) { defaultRegistry.Set(c) }

// Active returns the process-wide active client.
func Active() (*Client, error) { return defaultRegistry.Active() }

// ResetActive clears the process-wide active client.
func ResetActive() { defaultRegistry.Reset() }
