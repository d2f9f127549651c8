// Package auth holds the authentication use cases and the contracts they
// need from the infrastructure layer.
package auth

// TokenPair is an access/refresh token set issued at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// TokenService issues and validates JWTs.
type TokenService interface {
	GenerateTokenPair(userID uint, role string) (*TokenPair, error)
	ValidateAccessToken(token string) (userID uint, role string, err error)
	ValidateRefreshToken(token string) (userID uint, role string, err error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}
