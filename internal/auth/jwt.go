package auth

import (
	"errors"
	"time"

	"eventbridge_admin/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: malformed,
// expired, or wrong signature. Callers must not distinguish the reasons to
// the client.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the full set of claims a token carries: id, email and account
// type, nothing else.
type Claims struct {
	UserID      uint               `json:"id"`
	Email       string             `json:"email"`
	AccountType models.AccountType `json:"accountType"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access tokens. The signing secret is
// process configuration injected at startup so tests can supply their own.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate issues a signed, time-bounded token for the given identity.
func (m *TokenManager) Generate(userID uint, email string, accountType models.AccountType) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      userID,
		Email:       email,
		AccountType: accountType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the claims. Any failure
// collapses into ErrInvalidToken.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
