package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt cost factor used for all password
// hashes. Fixed for the process lifetime; suitable for interactive
// login latency.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword produces a salted bcrypt hash of the given plaintext
// password. The salt and cost are embedded in the returned hash string,
// so no extra state is needed for later verification.
//
// Parameters:
//
//	password - plaintext password to hash
//
// Returns:
//
//	string - the bcrypt hash in its standard encoded form
//	error  - non-nil if the password is empty or hashing fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("correct horse battery staple")
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("empty password provided")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error occurred during password hashing: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the
// stored bcrypt hash. A mismatch is not an error condition: the function
// simply returns false, for a malformed hash as well as for a wrong
// password.
//
// Example usage:
//
//	if !utils.VerifyPassword(req.Password, admin.PasswordHash) {
//	    // reject login
//	}
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
