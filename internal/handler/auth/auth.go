// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"

	"wellness-journal/internal/api"
	"wellness-journal/internal/cache"
	"wellness-journal/internal/database"
	"wellness-journal/internal/middleware"
	"wellness-journal/internal/model"
	"wellness-journal/internal/service"
	"wellness-journal/internal/session"
	"wellness-journal/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	createUser      = store.CreateUser
	getUserByName   = store.GetUserByName
	createSession   = session.Create
	destroySession  = session.Destroy
)

// FormResponse 表單欄位描述（模板渲染不在服務範圍內）
// swagger:model auth.FormResponse
type FormResponse struct {
	Fields []string `json:"fields"`
}

// SignupFormHandler 顯示註冊表單欄位
// @Summary     Signup form
// @Tags        auth
// @Produce     json
// @Success     200 {object} FormResponse
// @Router      /signup [get]
func SignupFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, FormResponse{Fields: []string{"username", "password"}})
	}
}

// SignupHandler 建立新帳號
// @Summary     Sign up
// @Description 以 username/password 建立帳號，密碼以 bcrypt 哈希後儲存
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     303
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "使用者名稱已存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		if _, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			PasswordHash: hash,
		}); err != nil {
			if errors.Is(err, store.ErrDuplicateUsername) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.Redirect(http.StatusSeeOther, "/login")
	}
}

// LoginFormHandler 顯示登入表單欄位
// @Summary     Login form
// @Tags        auth
// @Produce     json
// @Success     200 {object} FormResponse
// @Router      /login [get]
func LoginFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, FormResponse{Fields: []string{"username", "password"}})
	}
}

// LoginHandler 驗證帳密並建立 session
// @Summary     Log in
// @Description 帳號不存在與密碼錯誤回傳相同訊息，避免使用者名稱列舉
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     303
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "invalid credentials"
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByName(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := createSession(c.Request().Context(), rdb, user.ID, session.DefaultTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create session"})
		}
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(session.DefaultTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return c.Redirect(http.StatusSeeOther, "/index")
	}
}

// LogoutHandler 清除 session，沒有 session 也安全
// @Summary     Log out
// @Tags        auth
// @Success     302
// @Failure     500 {object} api.ErrorResponse
// @Router      /logout [get]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			if err := destroySession(c.Request().Context(), rdb, cookie.Value); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to destroy session"})
			}
		}
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		return c.Redirect(http.StatusFound, "/login")
	}
}
