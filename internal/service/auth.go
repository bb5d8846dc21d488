package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// AuthService guards the admin area with a single shared passphrase. The
// configured hash is either a bcrypt hash or a hex SHA-256 digest.
type AuthService struct {
	passwordHash string
}

func NewAuthService(passwordHash string) *AuthService {
	return &AuthService{passwordHash: strings.TrimSpace(passwordHash)}
}

func (s *AuthService) Authenticate(password string) error {
	if s.passwordHash == "" || password == "" {
		return ErrInvalidPassword
	}

	if strings.HasPrefix(s.passwordHash, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return ErrInvalidPassword
		}
		return nil
	}

	sum := sha256.Sum256([]byte(password))
	got := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(got), []byte(strings.ToLower(s.passwordHash))) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
