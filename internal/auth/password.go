// Package auth checks the shared admin password.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// cost is the bcrypt work factor used when hashing a plain password at startup.
var cost = bcrypt.DefaultCost

// Password holds the bcrypt hash of the admin password; the plain text is
// never retained.
type Password struct {
	hash []byte
}

// NewPassword builds a checker from either a bcrypt hash or a plain password.
// When both are set the hash wins.
func NewPassword(plain, hash string) (*Password, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return &Password{hash: []byte(hash)}, nil
	}
	if plain == "" {
		return nil, errors.New("admin password is empty")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Password{hash: h}, nil
}

// Verify reports whether candidate matches. Comparison time does not depend
// on how much of the candidate matches.
func (p *Password) Verify(candidate string) bool {
	if candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(candidate)) == nil
}
