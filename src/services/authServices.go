package services

import (
	"errors"
	"strings"
	"time"

	"github.com/atelier-arc/portfolio-backend/src/middleware"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid password")

// AuthService gates the admin surface behind a single shared secret. The
// password is only ever compared server-side, against a bcrypt hash; on
// success a signed session token with explicit expiry is issued.
type AuthService struct {
	passwordHash []byte
	sessionTTL   time.Duration
}

// NewAuthService accepts either a precomputed bcrypt hash or a plaintext
// password, which is hashed once at startup so comparison is uniform.
func NewAuthService(passwordHash, password string, sessionTTL time.Duration) (*AuthService, error) {
	hash := strings.TrimSpace(passwordHash)
	if hash == "" {
		if password == "" {
			return nil, errors.New("admin password is not configured")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(hashed)
	}
	return &AuthService{passwordHash: []byte(hash), sessionTTL: sessionTTL}, nil
}

// Authenticate checks the admin password and returns a signed JWT if valid.
func (s *AuthService) Authenticate(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(s.sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// SessionTTL is exposed so the login handler can align the cookie lifetime
// with the token expiry.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
