package dto

import "time"

// DevTokenRequest asks for an access token for a given user id. A missing id
// issues a token for a fresh user.
type DevTokenRequest struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
}

// TokenResponse contains an access token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
}
