package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest. The salt is random per call, so
// hashing the same password twice yields different digests.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain produced digest. Malformed or foreign
// digests simply fail verification.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
