package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCreate represents a validated pending ledger entry to persist.
type TransactionCreate struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       string
	Amount     int64
	Screenshot string
	Status     string
	CreatedAt  time.Time
}

// TransactionReview is the single admin mutation a ledger entry receives.
// Screenshot is only applied when the decision is an approval and the
// reviewer supplied one.
type TransactionReview struct {
	Status     string
	Comment    string
	Screenshot string
	ApprovedAt time.Time
	ApprovedBy uuid.UUID
}

// TransactionRead is a read-optimized view of a ledger entry.
type TransactionRead struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Type         string     `json:"type"`
	Amount       int64      `json:"amount"`
	Screenshot   string     `json:"screenshot,omitempty"`
	Status       string     `json:"status"`
	AdminComment string     `json:"adminComment"`
	CreatedAt    time.Time  `json:"createdAt"`
	ApprovedAt   *time.Time `json:"approvedAt"`
	ApprovedBy   *uuid.UUID `json:"approvedBy"`
}

// TransactionSubmitter carries the submitter fields the admin review list
// displays alongside each pending entry.
type TransactionSubmitter struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

// TransactionWithUser is a ledger entry joined with its submitter.
type TransactionWithUser struct {
	TransactionRead
	User TransactionSubmitter `json:"user"`
}
