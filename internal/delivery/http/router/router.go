// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cortex/internal/delivery/http/middleware"
	"cortex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ConnectionHandler *handler.ConnectionHandler
	SyncHandler       *handler.SyncHandler
	ProfileHandler    *handler.ProfileHandler
	DataHandler       *handler.DataHandler
	CronHandler       *handler.CronHandler
	AuthMiddleware    *middleware.AuthMiddleware
	CronMiddleware    *middleware.CronMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	connectionHandler *handler.ConnectionHandler
	syncHandler       *handler.SyncHandler
	profileHandler    *handler.ProfileHandler
	dataHandler       *handler.DataHandler
	cronHandler       *handler.CronHandler
	authMiddleware    *middleware.AuthMiddleware
	cronMiddleware    *middleware.CronMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		connectionHandler: params.ConnectionHandler,
		syncHandler:       params.SyncHandler,
		profileHandler:    params.ProfileHandler,
		dataHandler:       params.DataHandler,
		cronHandler:       params.CronHandler,
		authMiddleware:    params.AuthMiddleware,
		cronMiddleware:    params.CronMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Provider redirects land here without our bearer token; the state parameter identifies the user
	e.GET("/oauth/:provider/callback", r.connectionHandler.Callback)

	cronGroup := e.Group("/cron")
	cronGroup.Use(r.cronMiddleware.RequireSecret)
	{
		cronGroup.GET("/sync", r.cronHandler.Sync)
		cronGroup.POST("/sync", r.cronHandler.Sync)
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/connections", r.connectionHandler.List)
		apiGroup.DELETE("/connections/:provider", r.connectionHandler.Disconnect)
		apiGroup.GET("/oauth/:provider", r.connectionHandler.Authorize)

		apiGroup.POST("/sync", r.syncHandler.SyncAll)
		apiGroup.GET("/sync/logs", r.syncHandler.Logs)
		apiGroup.POST("/sync/:provider", r.syncHandler.SyncProvider)

		apiGroup.GET("/profile", r.profileHandler.Get)
		apiGroup.PUT("/profile", r.profileHandler.Update)

		apiGroup.GET("/data/whoop", r.dataHandler.Whoop)
		apiGroup.GET("/data/withings", r.dataHandler.Withings)
	}
}
