// Package dto contains the data transfer shapes shared between services,
// repositories and the web layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to persist a new user. Password is
// already hashed by the domain constructor.
type UserCreate struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Easypaisa string
	Role      string
	Password  string
	IsActive  bool
}

// UserUpdate represents the fields an update may touch. Nil fields are
// left unchanged.
type UserUpdate struct {
	Password *string
	IsActive *bool
}

// UserRead is a read-optimized view of a user. The hashed password is
// carried for credential checks only and never serialized.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Easypaisa      string    `json:"easypaisa"`
	Role           string    `json:"role"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FullName returns the display name used in notification messages.
func (u *UserRead) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserActivity is one row of the admin account listing: profile fields plus
// transaction counts and summed amounts across ALL statuses. This is
// intentionally broader than the approved-only summary.
type UserActivity struct {
	ID                uuid.UUID `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Role              string    `json:"role"`
	IsActive          bool      `json:"isActive"`
	Deposits          int64     `json:"deposits"`
	Withdrawals       int64     `json:"withdrawals"`
	DepositsAmount    int64     `json:"depositsAmount"`
	WithdrawalsAmount int64     `json:"withdrawalsAmount"`
}
