package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims are the claims carried by access tokens. Only the user id is
// used to scope data; everything else is informational.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	ProfileID string `json:"profile_id,omitempty"`
	TokenType string `json:"token_type"`
}
