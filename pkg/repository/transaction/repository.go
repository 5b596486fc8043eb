// Package transaction defines the persistence contract for ledger entries.
package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/dto"
)

// Repository is the persistence contract for ledger entries. Get returns
// (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, create *dto.TransactionCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)

	// ListByUser returns the account's entries newest-first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)

	// ListByStatusWithUser returns entries in the given status
	// newest-first, joined with submitter contact fields.
	ListByStatusWithUser(ctx context.Context, status string) ([]*dto.TransactionWithUser, error)

	// Review applies the admin decision to the entry. A re-review
	// overwrites the previous decision; there is no version guard.
	Review(ctx context.Context, id uuid.UUID, review *dto.TransactionReview) error
}
