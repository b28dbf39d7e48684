package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnknownHashing = errors.New("unknown password hashing mode")
)

const (
	ModePlaintext = "plaintext"
	ModeBcrypt    = "bcrypt"
)

// PasswordHasher turns a password into its stored form and checks candidates against it
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, stored string) bool
}

// Plaintext stores passwords as entered.
//
// Known limitation: this keeps parity with the original storefront, which compared and persisted
// raw passwords. Production deployments must use Bcrypt.
type Plaintext struct{}

func (Plaintext) Hash(password string) (string, error) { return password, nil }

func (Plaintext) Compare(password, stored string) bool { return password == stored }

// Bcrypt hashes passwords with golang.org/x/crypto/bcrypt
type Bcrypt struct {
	Cost int
}

// Hash hashes a password using bcrypt
func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare compares a password with its hash
func (Bcrypt) Compare(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewHasher returns the hasher for a configured mode. An empty mode means plaintext.
func NewHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case "", ModePlaintext:
		return Plaintext{}, nil
	case ModeBcrypt:
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashing, mode)
	}
}
