package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamkudos/kudos-backend/pkg/apperrors"
)

// JWTManager mints and verifies the stateless session tokens. One shared
// secret, HMAC-SHA256, claims {userId, email, role} plus iat/exp.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generate signs a session token for the given identity and returns it with
// its expiry.
func (m *JWTManager) Generate(userID, email, role string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse verifies signature and expiry and returns the decoded claims.
// Expiry and signature failures come back as distinct domain errors so the
// caller can tell "re-authenticate" from "reject".
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.InvalidToken("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		// jwt/v5 wraps expiry in its own sentinel.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.TokenExpired("token expired")
		}
		return nil, apperrors.InvalidToken("invalid token")
	}
	if !tkn.Valid {
		return nil, apperrors.InvalidToken("invalid token")
	}
	return claims, nil
}
