// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pairup/internal/delivery/http/middleware"
	"pairup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AccessHandler     *handler.AccessHandler
	ProfileHandler    *handler.ProfileHandler
	PairingHandler    *handler.PairingHandler
	EngagementHandler *handler.EngagementHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	accessHandler     *handler.AccessHandler
	profileHandler    *handler.ProfileHandler
	pairingHandler    *handler.PairingHandler
	engagementHandler *handler.EngagementHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		accessHandler:     params.AccessHandler,
		profileHandler:    params.ProfileHandler,
		pairingHandler:    params.PairingHandler,
		engagementHandler: params.EngagementHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Access gate routes. These stay public: the evaluator reports a decision
	// for any caller, and age verification happens before login exists.
	accessGroup := e.Group("/access")
	{
		accessGroup.GET("/evaluate", r.accessHandler.Evaluate)
		accessGroup.POST("/verify-age", r.accessHandler.VerifyAge)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/callback/google", r.authHandler.OAuthCallback)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Profile routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Save)
		profileGroup.POST("/avatar", r.profileHandler.UploadAvatar)
	}

	// Feed and pairing routes that require authentication
	feedGroup := e.Group("/feed")
	feedGroup.Use(r.authMiddleware.Authenticate)
	{
		feedGroup.GET("", r.pairingHandler.Feed)
	}

	pairingGroup := e.Group("/pairings")
	pairingGroup.Use(r.authMiddleware.Authenticate)
	{
		pairingGroup.POST("", r.pairingHandler.Create)
		pairingGroup.POST("/analyze", r.pairingHandler.Analyze)
		pairingGroup.GET("/:id", r.pairingHandler.Get)
		pairingGroup.PUT("/:id/reality-score", r.pairingHandler.RateReality)
		pairingGroup.POST("/:id/like", r.engagementHandler.ToggleLike)
		pairingGroup.POST("/:id/comments", r.engagementHandler.AddComment)
	}
}
