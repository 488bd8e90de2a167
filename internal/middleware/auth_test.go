package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromClaims(t *testing.T) {
	identity, ok := identityFromClaims(jwt.MapClaims{
		"sub":   "10086",
		"name":  "小明",
		"email": "ming@example.com",
	})
	require.True(t, ok)
	assert.Equal(t, int64(10086), identity.PublicID)
	assert.Equal(t, "小明", identity.DisplayName)
	assert.Equal(t, "ming@example.com", identity.Email)
}

func TestIdentityFromClaimsOptionalFields(t *testing.T) {
	identity, ok := identityFromClaims(jwt.MapClaims{"sub": "1"})
	require.True(t, ok)
	assert.Equal(t, int64(1), identity.PublicID)
	assert.Empty(t, identity.DisplayName)
	assert.Empty(t, identity.Email)
}

func TestIdentityFromClaimsRejectsBadSubject(t *testing.T) {
	cases := []jwt.MapClaims{
		{},
		{"sub": ""},
		{"sub": "not-a-number"},
		{"sub": 10086}, // sub 必须是字符串
	}
	for _, claims := range cases {
		_, ok := identityFromClaims(claims)
		assert.False(t, ok)
	}
}
