// File: internal/api/user_response.go
package api

import (
	"time"

	"project-admin/internal/model"
)

// UserResponse 不含任何密碼欄位
// swagger:model api.UserResponse
type UserResponse struct {
	ID          int        `json:"id" example:"2"`
	Username    string     `json:"username" example:"alice"`
	Email       string     `json:"email" example:"alice@example.com"`
	Role        string     `json:"role" example:"user"`
	CreatedAt   time.Time  `json:"created_at" example:"2026-05-01T15:04:05Z"`
	UpdatedAt   time.Time  `json:"updated_at" example:"2026-05-01T15:04:05Z"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
