package auth

import "golang.org/x/crypto/bcrypt"

// AdminKey verifies operator keys against a bcrypt hash.
// The zero value rejects every key.
type AdminKey struct {
	hash []byte
}

// NewAdminKey wraps a bcrypt hash as produced by HashKey.
func NewAdminKey(hash string) AdminKey {
	return AdminKey{hash: []byte(hash)}
}

// HashKey returns the bcrypt hash of key (cost 10).
func HashKey(key string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(b), err
}

// Enabled reports whether a hash is configured.
func (a AdminKey) Enabled() bool { return len(a.hash) > 0 }

// Verify reports whether key matches the configured hash.
func (a AdminKey) Verify(key string) bool {
	if !a.Enabled() || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.hash, []byte(key)) == nil
}
