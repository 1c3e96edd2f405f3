// Package profiles persists connection profiles in a local SQLite database.
// Stored passwords are encrypted with a key derived from the per-device
// secret.
package profiles

import (
	"context"

	"github.com/pliablepixels/zmng/internal/client/models"
)

// Repository defines profile storage operations.
//
// Contract:
//   - GetByName: returns common.ErrNotFound when no profile matches.
//   - Save: inserts or replaces the profile with the same name.
//   - Delete: removes a profile; deleting a missing name is not an error.
//
// All methods must honor context cancellation/timeouts.
type Repository interface {
	GetByName(ctx context.Context, name string) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Save(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context, name string) error
}
