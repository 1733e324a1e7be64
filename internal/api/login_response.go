package api

import "time"

// swagger:model api.LoginResponse
type LoginResponse struct {
	ID        int       `json:"id" example:"2"`
	Username  string    `json:"username" example:"alice"`
	Role      string    `json:"role" example:"user"`
	Token     string    `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time `json:"expires_at" example:"2026-05-09T15:04:05Z"`
}
