package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,notblank" example:"alice"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
