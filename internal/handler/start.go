// File: internal/handler/start.go
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StartResponse 公開首頁回應模型
// swagger:model StartResponse
type StartResponse struct {
	// 服務名稱
	Message string `json:"message" example:"Mental Wellness Journal"`
}

// StartHandler 公開首頁，未登入亦可存取
// @Summary     Landing page
// @Description 公開首頁，回傳服務名稱
// @Tags        public
// @Produce     json
// @Success     200 {object} StartResponse
// @Router      / [get]
func StartHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, StartResponse{Message: "Mental Wellness Journal"})
	}
}
