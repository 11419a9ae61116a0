package main

import (
	"github.com/abdullah-briah/neuralinker-sub000/internal/middleware"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// Rate limiter for credential-guessing surfaces
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", svc.healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.PUT("/auth/password", svc.authHandler.ChangePassword)

			// Users
			protected.GET("/users/search", svc.userHandler.Search)
			protected.GET("/users/:id", svc.userHandler.GetProfile)
			protected.PUT("/users/me", svc.userHandler.UpdateProfile)

			// Projects
			protected.GET("/projects", svc.projectHandler.List)
			protected.GET("/projects/mine", svc.projectHandler.ListMine)
			protected.GET("/projects/:id", svc.projectHandler.GetByID)
			protected.POST("/projects", svc.projectHandler.Create)
			protected.PUT("/projects/:id", svc.projectHandler.Update)
			protected.DELETE("/projects/:id", svc.projectHandler.Delete)
			protected.GET("/projects/:id/versions", svc.projectHandler.ListVersions)
			protected.GET("/projects/:id/members", svc.projectHandler.ListMembers)
			protected.GET("/projects/:id/join-requests", svc.joinRequestHandler.ListForProject)

			// Join requests
			protected.POST("/join-requests", svc.joinRequestHandler.Create)
			protected.GET("/join-requests/mine", svc.joinRequestHandler.ListMine)
			protected.PATCH("/join-requests/:id/respond", svc.joinRequestHandler.Respond)

			// Notifications
			protected.GET("/notifications", svc.notificationHandler.List)
			protected.GET("/notifications/unread-count", svc.notificationHandler.UnreadCount)
			protected.PUT("/notifications/:id/read", svc.notificationHandler.MarkAsRead)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/scorer-configs", svc.scorerConfigHandler.List)
			admin.GET("/scorer-configs/:id", svc.scorerConfigHandler.GetByID)
			admin.POST("/scorer-configs", svc.scorerConfigHandler.Create)
			admin.PUT("/scorer-configs/:id", svc.scorerConfigHandler.Update)
			admin.DELETE("/scorer-configs/:id", svc.scorerConfigHandler.Delete)
		}
	}
}
