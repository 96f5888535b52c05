package routes

import (
	"github.com/CollegeSite/College-Backend/src/controllers"
	"github.com/CollegeSite/College-Backend/src/middleware"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.Engine, service *services.AuthService) {
	authController := controllers.NewAuthController(service)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	protected := router.Group("/auth")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
	}
}
