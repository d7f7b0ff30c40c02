package api

// EntryRequest 新增與編輯共用的表單，欄位皆為必填
// swagger:model api.EntryRequest
type EntryRequest struct {
	Content   string `form:"entry" validate:"required" example:"I am grateful today"`
	Mood      string `form:"mood" validate:"required" example:"Happy"`
	Gratitude string `form:"gratitude" validate:"required" example:"Family"`
}
