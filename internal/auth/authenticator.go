package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Authenticator is the credential verifier: it hashes plaintext secrets for
// storage and checks a plaintext against a stored hash.
type Authenticator struct{}

func (a Authenticator) HashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func (a Authenticator) ComparePassword(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
