// Package user defines the persistence contract for user accounts.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/dto"
)

// Repository is the persistence contract for user accounts. Lookups return
// (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, create *dto.UserCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role string) ([]*dto.UserRead, error)
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	// ListWithActivity returns every account joined with transaction
	// counts and summed amounts across all statuses.
	ListWithActivity(ctx context.Context) ([]*dto.UserActivity, error)
}
