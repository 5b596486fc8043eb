package utils_test

import (
	"testing"

	"github.com/hamzaimran/bitpro/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, utils.CheckPasswordHash("password123", hash))
	assert.False(t, utils.CheckPasswordHash("wrongpassword", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	t.Parallel()
	assert.False(t, utils.CheckPasswordHash("password123", "not-a-hash"))
}

func TestIsEmail(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	assert.True(utils.IsEmail("hamza@example.com"))
	assert.True(utils.IsEmail("first.last+tag@sub.example.co"))
	assert.False(utils.IsEmail("not-an-email"))
	assert.False(utils.IsEmail("missing@domain@example.com"))
	assert.False(utils.IsEmail(""))
}
