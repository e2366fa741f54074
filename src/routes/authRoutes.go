package routes

import (
	"github.com/atelier-arc/portfolio-backend/src/controllers"
	"github.com/atelier-arc/portfolio-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.Engine, service *services.AuthService, secureCookies bool) {
	controller := controllers.NewAuthController(service, secureCookies)

	auth := router.Group("/api/auth")
	{
		auth.POST("/login", controller.Login)
		auth.POST("/logout", controller.Logout)
	}
}
