package api

import "project-admin/internal/model"

// swagger:model api.AssignmentResponse
type AssignmentResponse struct {
	ProjectID int `json:"project_id" example:"1"`
	UserID    int `json:"user_id" example:"2"`
}

func NewAssignmentResponses(edges []model.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(edges))
	for _, a := range edges {
		out = append(out, AssignmentResponse{ProjectID: a.ProjectID, UserID: a.UserID})
	}
	return out
}
