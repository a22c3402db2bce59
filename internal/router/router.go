package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/Pawankumarhr/prime-trade/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Task      *apiHandler.TaskHandler
	Analytics *apiHandler.AnalyticsHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/auth/signup", handlers.Auth.Signup)
	r.POST("/auth/login", handlers.Auth.Login)
	r.GET("/auth/me", authMiddleware(handlers.Auth.Me))

	// Protected routes
	r.GET("/tasks", authMiddleware(handlers.Task.List))
	r.POST("/tasks", authMiddleware(handlers.Task.Create))
	r.GET("/tasks/{id}", authMiddleware(handlers.Task.Get))
	r.PATCH("/tasks/{id}", authMiddleware(handlers.Task.Patch))
	r.DELETE("/tasks/{id}", authMiddleware(handlers.Task.Delete))

	r.GET("/analytics", authMiddleware(handlers.Analytics.Summary))
	r.GET("/insights", authMiddleware(handlers.Analytics.Insights))

	return r
}
