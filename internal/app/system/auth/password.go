// internal/app/system/auth/password.go
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost factor the stored hashes were created with.
const bcryptCost = 10

// HashPassword hashes a plain-text password with bcrypt.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
