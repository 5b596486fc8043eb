package user_test

import (
	"testing"

	"github.com/hamzaimran/bitpro/pkg/domain/user"
	"github.com/hamzaimran/bitpro/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	u, err := user.New("Hamza", "Imran", "hamza@example.com", "03001234567", "03001234567", "password123")
	require.NoError(err)
	assert.NotEmpty(u.ID)
	assert.Equal(user.RoleUser, u.Role)
	assert.True(u.IsActive)
	assert.Equal("Hamza Imran", u.FullName())
	assert.NotEqual("password123", u.Password)
	assert.True(utils.CheckPasswordHash("password123", u.Password))
}

func TestNew_MissingFields(t *testing.T) {
	t.Parallel()
	u, err := user.New("Hamza", "", "hamza@example.com", "03001234567", "03001234567", "password123")
	assert.ErrorIs(t, err, user.ErrMissingFields)
	assert.Nil(t, u)
}

func TestNew_InvalidEmail(t *testing.T) {
	t.Parallel()
	u, err := user.New("Hamza", "Imran", "not-an-email", "03001234567", "03001234567", "password123")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
	assert.Nil(t, u)
}
