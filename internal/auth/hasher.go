package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies credentials. Passwords and refresh tokens carry
// independent bcrypt cost factors. Refresh tokens are digested with SHA-256
// before bcrypt because bcrypt only considers the first 72 bytes of its input
// and a signed JWT is longer than that.
type Hasher struct {
	passwordCost int
	tokenCost    int
}

// NewHasher creates a Hasher. Costs outside bcrypt's supported range fall
// back to bcrypt.DefaultCost.
func NewHasher(passwordCost, tokenCost int) *Hasher {
	return &Hasher{
		passwordCost: clampCost(passwordCost),
		tokenCost:    clampCost(tokenCost),
	}
}

func clampCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// HashPassword returns the bcrypt hash of a password.
func (h *Hasher) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches the stored hash.
func (h *Hasher) ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashToken returns the bcrypt hash of a refresh token's SHA-256 digest.
func (h *Hasher) HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(tokenDigest(token), h.tokenCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareToken reports whether token matches the stored hash.
func (h *Hasher) CompareToken(hash, token string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), tokenDigest(token)) == nil
}

func tokenDigest(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return []byte(hex.EncodeToString(sum[:]))
}
