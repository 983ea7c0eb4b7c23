package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"autobuy.backend/internal/interfaces/http/handlers"
	"autobuy.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	registrationHandler *handlers.RegistrationHandler
	authHandler         *handlers.AuthHandler
	resetHandler        *handlers.PasswordResetHandler
	pageHandler         *handlers.PageHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Registration (public)
		v1.POST("/register/", d.registrationHandler.Register)
		v1.POST("/register/confirm/", d.registrationHandler.ConfirmEmail)
		v1.POST("/phone/send-code/", d.registrationHandler.SendPhoneCode)
		v1.POST("/phone/register/", d.registrationHandler.RegisterByPhone)

		// Session; logout requires a valid access token
		v1.POST("/login/", d.authHandler.Login)
		v1.POST("/token/refresh/", d.authHandler.Refresh)
		v1.POST("/logout/", d.authMiddleware, d.authHandler.Logout)

		// Social login (public); :provider is google, facebook or apple
		v1.POST("/auth/:provider/", d.authHandler.OAuthLogin)

		// Password reset (public)
		v1.POST("/reset-password/init/", d.resetHandler.Init)
		v1.POST("/reset-password/confirm/", d.resetHandler.Confirm)

		// Content pages (public)
		v1.GET("/pages", d.pageHandler.List)
		v1.GET("/pages/:slug", d.pageHandler.GetBySlug)

		// Profile (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("/", d.authHandler.GetProfile)
			profile.PATCH("/", d.authHandler.UpdateProfile)
		}

		// Moderation back office (admin only)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAccountType("admin"))
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/users/:id/status", d.adminHandler.SetStatus)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "autobuy-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
