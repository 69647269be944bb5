package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.GenerateToken("u-1", "Jane Doe", "sales")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "sales", claims.Role)
	assert.Equal(t, "u-1", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("one", time.Hour).GenerateToken("u-1", "Jane", "sales")
	require.NoError(t, err)

	_, err = New("two", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := New("secret", -time.Minute)
	token, err := svc.GenerateToken("u-1", "Jane", "sales")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingUser(t *testing.T) {
	svc := New("secret", time.Hour)
	token, err := svc.GenerateToken("", "Nobody", "sales")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
