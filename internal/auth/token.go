package auth

import (
	"errors"
	"time"

	"arena-platform/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "arena-platform"

type claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies HS256 identity tokens. The secret is
// process-wide configuration, loaded once at startup; it must never appear
// in logs or responses.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token bound to a single user identity.
func (tm *TokenManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	})
	return tok.SignedString(tm.secret)
}

// Verify checks signature and expiry and returns the bound user id.
func (tm *TokenManager) Verify(tokenString string) (uuid.UUID, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrTokenInvalid
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, models.ErrTokenExpired
		}
		return uuid.Nil, models.ErrTokenInvalid
	}
	cl, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid || cl.UserID == uuid.Nil {
		return uuid.Nil, models.ErrTokenInvalid
	}
	return cl.UserID, nil
}
