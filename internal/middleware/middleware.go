package middleware

import (
	"net/http"

	"wellness-journal/internal/cache"
	"wellness-journal/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey    = "user_id"
	SessionCookieName = "session_id"
)

var resolveSession = session.Resolve

// RequireAuth 由 session cookie 解析出 user id 放入 context
// 沒有有效 session 一律導向登入頁，不回傳錯誤
func RequireAuth(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}
			userID, err := resolveSession(c.Request().Context(), rdb, cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(ContextUserKey, userID)
			return next(c)
		}
	}
}

// CurrentUserID 取出 RequireAuth 放入的 user id
func CurrentUserID(c echo.Context) int {
	id, _ := c.Get(ContextUserKey).(int)
	return id
}
