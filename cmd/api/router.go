package api

import (
	"net/http"

	"stylemail-backend/internal/auth/delivery"
	authUsecase "stylemail-backend/internal/auth/usecase"
	composeDelivery "stylemail-backend/internal/compose/delivery"
	styleDelivery "stylemail-backend/internal/style/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, styleHandler *styleDelivery.StyleHandler, composeHandler *composeDelivery.ComposeHandler) {
	authHandler := delivery.NewAuthHandler(authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
			auth.DELETE("/account", delivery.AuthMiddleware(authUsecase), authHandler.DeleteAccount)
		}

		// Style profile routes (protected)
		style := api.Group("/style")
		style.Use(delivery.AuthMiddleware(authUsecase))
		{
			style.POST("/pairs", styleHandler.SubmitEmailPairs)
			style.GET("/analysis", styleHandler.GetStyleAnalysis)
			style.GET("/samples", styleHandler.GetSyntheticEmails)
			style.POST("/feedback", styleHandler.SubmitFeedback)
			style.POST("/profile", styleHandler.SaveStyleProfile)
			style.GET("/profile", styleHandler.GetStyleProfile)
			style.GET("/data", styleHandler.GetUserData)
		}

		// Composition routes (protected)
		compose := api.Group("/compose")
		compose.Use(delivery.AuthMiddleware(authUsecase))
		{
			compose.POST("", composeHandler.GenerateEmail)
			compose.GET("/history", composeHandler.ListGeneratedEmails)
		}

		// Settings routes (public) - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
