package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a raw password with a randomized salt.
func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifies a raw password against a stored hash. Any
// verification error, including a malformed hash, is a failed match.
func CheckPassword(hashed, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}
