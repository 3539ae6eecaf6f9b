package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/attendance-service/internal/config"
)

// TokenManager issues and validates self-contained JWT access tokens.
// Validation needs no store lookup: signature, issuer, audience and expiry
// are all checked from the token itself.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenManager builds a manager from auth configuration. A missing
// secret, issuer or audience is a configuration error.
func NewTokenManager(cfg config.AuthConfig) (*TokenManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ttlMinutes := cfg.AccessTokenTTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = 30
	}
	return &TokenManager{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

// Claims describes the JWT payload. Name mirrors Email so kiosk clients can
// render the signed-in identity without another lookup.
type Claims struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// StaffID parses the subject claim back into a staff identifier.
func (c *Claims) StaffID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Issue builds and signs a token for the staff member.
func (tm *TokenManager) Issue(staffID int64, email string, roles []string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email: email,
		Name:  email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(staffID, 10),
			Issuer:    tm.issuer,
			Audience:  jwt.ClaimStrings{tm.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates a token string and returns its claims. Expired tokens,
// bad signatures and issuer/audience mismatches all fail here.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithIssuer(tm.issuer), jwt.WithAudience(tm.audience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
