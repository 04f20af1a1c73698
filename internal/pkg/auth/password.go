package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost keeps a single hash in the tens-of-milliseconds range on
// commodity hardware.
const BcryptCost = 10

// HashPassword hashes a plaintext password with a per-hash random salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
