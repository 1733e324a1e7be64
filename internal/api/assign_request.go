// File: internal/api/assign_request.go
package api

// AssignRequest 以新的使用者清單整批取代專案的指派
// swagger:model api.AssignRequest
type AssignRequest struct {
	UserIDs []int `json:"userIds" validate:"required,dive,gt=0,lte=2147483647" example:"2,3"`
}
