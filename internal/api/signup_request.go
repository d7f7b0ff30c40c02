package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Username string `form:"username" validate:"required" example:"alice"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
}
