package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		JWTIssuer:             "attendance-service",
		JWTAudience:           "attendance-clients",
		AccessTokenTTLMinutes: 30,
	}
}

func TestNewTokenManagerRequiresConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.AuthConfig)
	}{
		{"missing secret", func(c *config.AuthConfig) { c.JWTSecret = "" }},
		{"missing issuer", func(c *config.AuthConfig) { c.JWTIssuer = "" }},
		{"missing audience", func(c *config.AuthConfig) { c.JWTAudience = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testAuthConfig()
			tc.mutate(&cfg)
			_, err := NewTokenManager(cfg)
			assert.Error(t, err)
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	token, expiresAt, err := tm.Issue(7, "a@b.com", []string{"ADMIN"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)

	staffID, err := claims.StaffID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), staffID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "a@b.com", claims.Name)
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)
	tm.ttl = -time.Minute

	token, _, err := tm.Issue(7, "a@b.com", []string{"ADMIN"})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	tm, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	token, _, err := tm.Issue(7, "a@b.com", []string{"ADMIN"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one byte of the claim segment.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = tm.Parse(tampered)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuerOrAudience(t *testing.T) {
	tm, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	token, _, err := tm.Issue(7, "a@b.com", nil)
	require.NoError(t, err)

	t.Run("wrong issuer", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTIssuer = "someone-else"
		other, err := NewTokenManager(cfg)
		require.NoError(t, err)

		_, err = other.Parse(token)
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTAudience = "other-clients"
		other, err := NewTokenManager(cfg)
		require.NoError(t, err)

		_, err = other.Parse(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTSecret = "other-secret"
		other, err := NewTokenManager(cfg)
		require.NoError(t, err)

		_, err = other.Parse(token)
		assert.Error(t, err)
	})
}

func TestIssueWithEmptyRoleSet(t *testing.T) {
	tm, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)

	token, _, err := tm.Issue(3, "kiosk@b.com", nil)
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Roles)
}
