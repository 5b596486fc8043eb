// Package transaction holds the ledger entry entity and the state machine
// rules for the deposit/withdrawal review workflow.
package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type is the kind of ledger entry a user can submit.
type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
)

// Status is the review state of a ledger entry. Entries start pending and
// transition exactly once to approved or rejected; nothing moves back.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// MinAmount is the smallest accepted amount, in whole PKR.
const MinAmount int64 = 100

var (
	// ErrTransactionNotFound is returned when a ledger entry cannot be
	// resolved by id.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidType is returned for a type outside deposit/withdrawal.
	ErrInvalidType = errors.New("invalid type")
	// ErrAmountBelowMinimum is returned for amounts under MinAmount.
	ErrAmountBelowMinimum = errors.New("minimum amount 100")
	// ErrProofRequired is returned when a deposit is submitted without a
	// proof-of-payment screenshot.
	ErrProofRequired = errors.New("screenshot required for deposit")
	// ErrInvalidStatus is returned for a review decision outside
	// approved/rejected.
	ErrInvalidStatus = errors.New("invalid status")
)

// Transaction is one deposit or withdrawal request. Amount is immutable
// after creation; the review fields are written by an admin decision.
type Transaction struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Type         Type       `json:"type"`
	Amount       int64      `json:"amount"`
	Screenshot   string     `json:"screenshot,omitempty"`
	Status       Status     `json:"status"`
	AdminComment string     `json:"adminComment"`
	CreatedAt    time.Time  `json:"createdAt"`
	ApprovedAt   *time.Time `json:"approvedAt"`
	ApprovedBy   *uuid.UUID `json:"approvedBy"`
}

// New validates a submission and returns a pending entry. Deposits must
// carry a proof-of-payment reference; withdrawals may omit it. The proof
// check runs before type and amount, so a deposit missing its screenshot
// reports the missing proof even when the amount is also too low.
func New(userID uuid.UUID, kind Type, amount int64, screenshot string) (*Transaction, error) {
	if kind == TypeDeposit && screenshot == "" {
		return nil, ErrProofRequired
	}
	if kind != TypeDeposit && kind != TypeWithdrawal {
		return nil, ErrInvalidType
	}
	if amount < MinAmount {
		return nil, ErrAmountBelowMinimum
	}
	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       kind,
		Amount:     amount,
		Screenshot: screenshot,
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// ValidDecision reports whether a review decision is a legal target state.
func ValidDecision(s Status) bool {
	return s == StatusApproved || s == StatusRejected
}

// Summary is the approved-only financial rollup for one account. Pending
// and rejected entries are excluded entirely; this is a product policy,
// not an accounting identity.
type Summary struct {
	TotalDeposits         int   `json:"totalDeposits"`
	TotalWithdrawals      int   `json:"totalWithdrawals"`
	TotalDepositAmount    int64 `json:"totalDepositAmount"`
	TotalWithdrawalAmount int64 `json:"totalWithdrawalAmount"`
	NetBalance            int64 `json:"netBalance"`
	IsProfit              bool  `json:"isProfit"`
}

// Summarize computes the approved-only Summary over a transaction history.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, t := range txs {
		if t.Status != StatusApproved {
			continue
		}
		switch t.Type {
		case TypeDeposit:
			s.TotalDeposits++
			s.TotalDepositAmount += t.Amount
		case TypeWithdrawal:
			s.TotalWithdrawals++
			s.TotalWithdrawalAmount += t.Amount
		}
	}
	s.NetBalance = s.TotalDepositAmount - s.TotalWithdrawalAmount
	s.IsProfit = s.NetBalance >= 0
	return s
}
