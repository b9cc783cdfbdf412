package helper

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("longenough1")
	require.NoError(t, err)
	require.NotEqual(t, "longenough1", hashed)

	a := SetupAuth("secret")
	assert.NoError(t, a.VerifyPassword("longenough1", hashed))
	assert.Error(t, a.VerifyPassword("wrongpass", hashed))
}

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Parallel()

	a := SetupAuth("super-secret")

	tok, err := a.GenerateToken("user-123", "a@b.com")
	require.NoError(t, err)

	claims, err := a.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)

	// bearer prefix is accepted too
	claims, err = a.VerifyToken("Bearer " + tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := SetupAuth("right-secret").GenerateToken("u1", "a@b.com")
	require.NoError(t, err)

	_, err = SetupAuth("wrong-secret").VerifyToken(tok)
	assert.Error(t, err)
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	a := SetupAuth("k")
	_, err := a.VerifyToken("not.a.jwt")
	assert.Error(t, err)

	_, err = a.VerifyToken("")
	assert.Error(t, err)
}

func TestGenerateToken_MissingInputs(t *testing.T) {
	t.Parallel()

	a := SetupAuth("k")
	_, err := a.GenerateToken("", "a@b.com")
	assert.Error(t, err)
	_, err = a.GenerateToken("u1", "")
	assert.Error(t, err)
}

func TestParseBasicCredentials(t *testing.T) {
	t.Parallel()

	header := "Basic " + base64.StdEncoding.EncodeToString([]byte("a@b.com:pass:word"))
	email, password, err := ParseBasicCredentials(header)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
	assert.Equal(t, "pass:word", password)

	_, _, err = ParseBasicCredentials("Bearer abc")
	assert.Error(t, err)

	_, _, err = ParseBasicCredentials("Basic not-base64!!!")
	assert.Error(t, err)

	_, _, err = ParseBasicCredentials("Basic " + base64.StdEncoding.EncodeToString([]byte("no-colon")))
	assert.Error(t, err)
}
