package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", h)

	assert.NoError(t, CheckPassword(h, "secret"))
	assert.ErrorIs(t, CheckPassword(h, "wrong"), ErrMismatch)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	// соль делает хеши разными
	assert.NotEqual(t, a, b)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestBurnCompare_NoPanic(t *testing.T) {
	BurnCompare("anything")
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordLen+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	// ровно 72 байта ещё допустимы
	h, err := HashPassword(strings.Repeat("a", MaxPasswordLen))
	require.NoError(t, err)
	assert.NoError(t, CheckPassword(h, strings.Repeat("a", MaxPasswordLen)))
}
