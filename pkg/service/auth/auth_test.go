package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/internal/fixtures/memory"
	domainuser "github.com/hamzaimran/bitpro/pkg/domain/user"
	"github.com/hamzaimran/bitpro/pkg/dto"
	authsvc "github.com/hamzaimran/bitpro/pkg/service/auth"
	"github.com/hamzaimran/bitpro/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*authsvc.Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return authsvc.New(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func seedUser(t *testing.T, store *memory.Store, email, password string, active bool) uuid.UUID {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	id := uuid.New()
	err = store.Users().Create(context.Background(), &dto.UserCreate{
		ID:        id,
		FirstName: "Hamza",
		LastName:  "Imran",
		Email:     email,
		Phone:     "03001234567",
		Easypaisa: "03001234567",
		Role:      "user",
		Password:  hashed,
		IsActive:  active,
	})
	require.NoError(t, err)
	return id
}

func TestLogin(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, store := newService(t)

	id := seedUser(t, store, "hamza@example.com", "password123", true)

	u, err := svc.Login(context.Background(), "hamza@example.com", "password123")
	require.NoError(err)
	assert.Equal(id, u.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	u, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, domainuser.ErrUserNotFound)
	assert.Nil(t, u)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	seedUser(t, store, "hamza@example.com", "password123", true)

	u, err := svc.Login(context.Background(), "hamza@example.com", "wrongpassword")
	assert.ErrorIs(t, err, domainuser.ErrInvalidCredentials)
	assert.Nil(t, u)
}

func TestLogin_Deactivated(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	seedUser(t, store, "hamza@example.com", "password123", false)

	u, err := svc.Login(context.Background(), "hamza@example.com", "password123")
	assert.ErrorIs(t, err, domainuser.ErrUserDeactivated)
	assert.Nil(t, u)
}

func TestLogin_DeactivatedWithWrongPassword(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	seedUser(t, store, "hamza@example.com", "password123", false)

	// The credential check runs first, so a wrong password wins.
	_, err := svc.Login(context.Background(), "hamza@example.com", "wrongpassword")
	assert.ErrorIs(t, err, domainuser.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, store := newService(t)
	ctx := context.Background()

	seedUser(t, store, "hamza@example.com", "password123", true)

	err := svc.ChangePassword(ctx, "hamza@example.com", "password123", "newpassword456")
	require.NoError(err)

	_, err = svc.Login(ctx, "hamza@example.com", "newpassword456")
	require.NoError(err)
	_, err = svc.Login(ctx, "hamza@example.com", "password123")
	assert.ErrorIs(t, err, domainuser.ErrInvalidCredentials)
}

func TestChangePassword_TooShort(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	seedUser(t, store, "hamza@example.com", "password123", true)

	err := svc.ChangePassword(context.Background(), "hamza@example.com", "password123", "short")
	assert.ErrorIs(t, err, domainuser.ErrPasswordTooShort)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	seedUser(t, store, "hamza@example.com", "password123", true)

	err := svc.ChangePassword(context.Background(), "hamza@example.com", "wrongpassword", "newpassword456")
	assert.ErrorIs(t, err, domainuser.ErrInvalidCredentials)
}

func TestChangePassword_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	err := svc.ChangePassword(context.Background(), "nobody@example.com", "password123", "newpassword456")
	assert.ErrorIs(t, err, domainuser.ErrUserNotFound)
}
