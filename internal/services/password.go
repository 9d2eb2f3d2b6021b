package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService isolates credential hashing and verification. Plaintext
// passwords are never stored; comparison is constant time via bcrypt.
type PasswordService interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

type passwordService struct {
	cost int
}

func NewPasswordService() PasswordService {
	return &passwordService{cost: bcrypt.DefaultCost}
}

// Hash implements PasswordService.
func (p *passwordService) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify implements PasswordService.
func (p *passwordService) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
