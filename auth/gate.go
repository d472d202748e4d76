// Package auth holds the credential check that gates access to the store.
// It is a single-factor check against static credentials, not a security
// boundary.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Gate interface {
	Authenticate(username, password string) bool
}

// StaticGate checks against a fixed set of users whose passwords are kept
// only as bcrypt hashes
type StaticGate struct {
	hashes map[string][]byte
}

// NewStaticGate hashes the given username -> password map
func NewStaticGate(users map[string]string) (*StaticGate, error) {
	g := &StaticGate{hashes: make(map[string][]byte, len(users))}
	for name, pass := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", name, err)
		}
		g.hashes[name] = hash
	}
	return g, nil
}

func (g *StaticGate) Authenticate(username, password string) bool {
	hash, ok := g.hashes[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
