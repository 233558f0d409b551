// Package password wraps bcrypt hashing for user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is used when a configured cost is out of bcrypt's range.
const DefaultCost = 12

// Hash hashes a plaintext password with bcrypt
func Hash(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	return string(bytes), err
}

// Check verifies a plaintext password against a bcrypt hash
func Check(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
