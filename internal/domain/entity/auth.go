package entity

import "time"

// AccessToken is a signed bearer credential issued after a successful login.
type AccessToken struct {
	Token     string    // The encoded token.
	TokenType string    // Always "bearer".
	ExpiresAt time.Time // Expiry of the token.
}

// TokenClaims is the identity recovered from a valid access token.
type TokenClaims struct {
	VendorID  int64
	Username  string
	ExpiresAt time.Time
}
