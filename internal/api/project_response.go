package api

import (
	"time"

	"project-admin/internal/model"
)

// swagger:model api.ProjectResponse
type ProjectResponse struct {
	ID           int       `json:"id" example:"1"`
	Name         string    `json:"name" example:"Apollo"`
	ThumbnailURL *string   `json:"thumbnail_url" example:"https://cdn.example.com/apollo.png"`
	CreatedAt    time.Time `json:"created_at" example:"2026-05-01T15:04:05Z"`
	UpdatedAt    time.Time `json:"updated_at" example:"2026-05-01T15:04:05Z"`
}

func NewProjectResponse(p model.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		ThumbnailURL: p.ThumbnailURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func NewProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
