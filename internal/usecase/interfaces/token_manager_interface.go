package interfaces

import "time"

// ITokenManager issues and verifies the session tokens the API hands out on
// sign-in. Verify returns the profile id the token was issued for.
type ITokenManager interface {
	Issue(userID string, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
}
