// Package password wraps bcrypt for one-way password storage. Each Hash call
// salts independently, so hashing the same input twice yields different
// strings; Verify relies on the salt and cost embedded in the hash itself.
package password

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor used for new hashes.
const hashCost = 12

// Hash returns the bcrypt hash of rawPassword.
func Hash(rawPassword string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(rawPassword), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether rawPassword matches the stored hash. A mismatch or
// a malformed hash both yield false, never an error.
func Verify(rawPassword, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawPassword)) == nil
}
