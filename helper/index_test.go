package helper

import (
	"testing"

	"pms_server/constants"
	"pms_server/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &model.User{
		DTO:  model.DTO{ID: 42},
		Role: constants.ROLE_SUPER_ADMIN,
	}

	token, err := GenerateAccessToken(user)
	require.NoError(t, err)

	parsed, err := ParseToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, constants.ROLE_SUPER_ADMIN, claims["role"])
}

func TestParseTokenRejectsTampering(t *testing.T) {
	user := &model.User{DTO: model.DTO{ID: 7}, Role: constants.ROLE_REGULAR_USER}
	token, err := GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}
