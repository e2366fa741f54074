package routes

import (
	"github.com/atelier-arc/portfolio-backend/src/controllers"
	"github.com/atelier-arc/portfolio-backend/src/middleware"
	"github.com/atelier-arc/portfolio-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupProjectRoutes(router *gin.Engine, service *services.ProjectService) {
	controller := controllers.NewProjectController(service)

	// Public routes
	projects := router.Group("/api/projects")
	{
		projects.GET("", controller.GetProjects)
		projects.GET("/:id", controller.GetProjectByID)
	}

	// Protected routes
	admin := router.Group("/api/projects")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", controller.CreateProject)
		admin.PUT("/:id", controller.UpdateProject)
		admin.DELETE("/:id", controller.DeleteProject)
		admin.GET("/export", controller.ExportProjects)
	}
}
