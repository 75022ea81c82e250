package password_test

import (
	"testing"

	"biletado/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	require.NoError(t, password.Verify("correct horse battery staple", hash))

	err = password.Verify("wrong password", hash)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	require.Error(t, err)
}

func TestVerifyEmptyInputs(t *testing.T) {
	hash, err := password.Hash("some password")
	require.NoError(t, err)

	assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("some password", ""), password.ErrInvalidPassword)
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same password")
	require.NoError(t, err)

	second, err := password.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	require.NoError(t, password.Verify("same password", first))
	require.NoError(t, password.Verify("same password", second))
}
