// Package user defines the user entity, roles and account-level errors.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/utils"
)

// Role distinguishes ordinary account holders from administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailAlreadyExists is returned on signup with a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrInvalidCredentials is returned when a password does not match
	// the stored hash.
	ErrInvalidCredentials = errors.New("wrong password")
	// ErrUserDeactivated is returned when an admin has deactivated the
	// account.
	ErrUserDeactivated = errors.New("account deactivated")
	// ErrPasswordTooShort is returned when a new password is under the
	// minimum length.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrInvalidEmail is returned when the email fails syntax checks.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrMissingFields is returned when required signup fields are empty.
	ErrMissingFields = errors.New("all fields are required")
)

// MinPasswordLength applies to password changes.
const MinPasswordLength = 8

// User represents an account holder.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Easypaisa string    `json:"easypaisa"`
	Role      Role      `json:"role"`
	Password  string    `json:"-"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns the display name used in notification messages.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// New creates a User with a hashed password, role "user" and active flag
// set. Field presence and email syntax are validated here so no partial
// account is ever persisted.
func New(firstName, lastName, email, phone, easypaisa, password string) (*User, error) {
	if firstName == "" || lastName == "" || email == "" ||
		phone == "" || easypaisa == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !utils.IsEmail(email) {
		return nil, ErrInvalidEmail
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Easypaisa: easypaisa,
		Role:      RoleUser,
		Password:  hashed,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
