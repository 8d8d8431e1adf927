// Where: internal/cloud/token.go
// What: Session token retrieval and persistence.
// Why: Reuse a stored login across runs without re-prompting.
package cloud

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wefthq/create-weft-app/internal/config"
)

// TokenStore retrieves and persists the cloud session token.
// Load/Save/Now are injectable for tests.
type TokenStore struct {
	Load func() (string, error)
	Save func(string) error
	Now  func() time.Time
}

// NewTokenStore returns a TokenStore backed by the global config file.
func NewTokenStore() TokenStore {
	return TokenStore{
		Load: config.LoadCloudToken,
		Save: config.SaveCloudToken,
		Now:  time.Now,
	}
}

// Retrieve returns the stored session token, or "" when none is stored or
// the stored token has expired.
func (s TokenStore) Retrieve() (string, error) {
	token, err := s.Load()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}
	if tokenExpired(token, s.Now()) {
		return "", nil
	}
	return token, nil
}

// Persist stores a freshly acquired session token.
func (s TokenStore) Persist(token string) error {
	return s.Save(token)
}

// tokenExpired inspects a JWT's exp claim without verifying the signature.
// Opaque (non-JWT) tokens are never treated as expired; the API is the
// authority for those.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}
	return expiry.Before(now)
}
