package routes

import (
	"github.com/atelier-arc/portfolio-backend/src/controllers"
	"github.com/atelier-arc/portfolio-backend/src/middleware"
	"github.com/atelier-arc/portfolio-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(router *gin.Engine, service *services.ImageService) {
	controller := controllers.NewUploadController(service)

	// Protected routes
	upload := router.Group("/api/upload")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("", controller.UploadImage)
	}
}
