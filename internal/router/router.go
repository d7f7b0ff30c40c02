// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"wellness-journal/internal/cache"
	"wellness-journal/internal/database"
	"wellness-journal/internal/handler"
	"wellness-journal/internal/handler/auth"
	"wellness-journal/internal/handler/entries"
	"wellness-journal/internal/middleware"
	"wellness-journal/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, annotator service.Annotator) {
	// 公開頁面
	e.GET("/", handler.StartHandler())
	e.GET("/signup", auth.SignupFormHandler())
	e.POST("/signup", auth.SignupHandler(db))
	e.GET("/login", auth.LoginFormHandler())
	e.POST("/login", auth.LoginHandler(db, rdb))
	e.GET("/logout", auth.LogoutHandler(rdb))

	// 健康檢查（需登入）
	e.GET("/ping", handler.PingHandler(db), middleware.RequireAuth(rdb))

	// 日記操作，一律限定當前使用者
	authed := e.Group("", middleware.RequireAuth(rdb))
	authed.GET("/index", entries.ListEntriesHandler(db))
	authed.POST("/add", entries.AddEntryHandler(db, annotator))
	authed.GET("/edit/:entry_id", entries.GetEntryHandler(db))
	authed.POST("/edit/:entry_id", entries.UpdateEntryHandler(db, annotator))
	authed.POST("/delete/:entry_id", entries.DeleteEntryHandler(db))
	authed.GET("/export", entries.ExportHandler(db))
}
