package server

import (
	"net/http"

	"github.com/brettbedarf/webshell/config"
	"github.com/brettbedarf/webshell/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRouter creates the echo router with all routes and middleware
func SetupRouter(handler *Handler, opts config.ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.StdLogger = util.NewLogLogger("HTTPServer", util.ErrorLevel)

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(RequestLogger())

	e.GET("/health", handler.HandleHealth)

	api := e.Group("/api/sessions")
	api.POST("", handler.HandleCreateSession)
	api.DELETE("/:id", handler.HandleDeleteSession)
	api.POST("/:id/submit", handler.HandleSubmit, NewRateLimiter(opts))
	api.GET("/:id/history/previous", handler.HandleHistoryPrevious)
	api.GET("/:id/history/next", handler.HandleHistoryNext)

	return e
}
