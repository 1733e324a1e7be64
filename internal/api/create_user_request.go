package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,notblank,max=64" example:"alice"`
	Password string `json:"password" form:"password" validate:"required,min=1,max=72" example:"Secret123!"`
	Email    string `json:"email" form:"email" validate:"omitempty,email" example:"alice@example.com"`
}
