package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed covers missing tokens, the literal "null" some
	// clients send for an empty storage slot, and unparsable strings.
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// JWT issues and verifies HS256 bearer tokens. The secret is injected once at
// construction and never read from the environment afterwards.
type JWT struct {
	Secret     string
	DefaultTTL time.Duration
}

func New(secret string, defaultTTL time.Duration) *JWT {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}

	return &JWT{Secret: secret, DefaultTTL: defaultTTL}
}

// CreateToken signs a token whose subject is the user's public identifier.
// A non-positive ttl falls back to the default.
func (j *JWT) CreateToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = j.DefaultTTL
	}

	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(j.Secret))
}

// VerifyToken returns the token subject, or one of ErrTokenMalformed,
// ErrTokenExpired, ErrTokenInvalid.
func (j *JWT) VerifyToken(tokenString string) (string, error) {
	if tokenString == "" || tokenString == "null" {
		return "", ErrTokenMalformed
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(j.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		default:
			return "", ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)

	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
