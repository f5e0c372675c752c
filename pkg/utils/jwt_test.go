package utils

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJWTTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	tokenString, err := CreateJWTToken("user-1", "freshbuyer", secret)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["userID"])
	assert.Equal(t, "freshbuyer", claims["username"])
	assert.Equal(t, true, claims["authorized"])
}

func TestCreateJWTTokenWrongSecret(t *testing.T) {
	tokenString, err := CreateJWTToken("user-1", "freshbuyer", "right-secret")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})

	assert.Error(t, err)
}
