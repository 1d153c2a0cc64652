package dto

import "time"

// LoginRequest exchanges the configured service API key for a JWT.
type LoginRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// LoginResponse returns the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
