package main

import (
	"log"
	"path/filepath"

	"github.com/atelier-arc/portfolio-backend/src/config"
	"github.com/atelier-arc/portfolio-backend/src/middleware"
	"github.com/atelier-arc/portfolio-backend/src/routes"
	"github.com/atelier-arc/portfolio-backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatalf("JWT_SECRET must be configured\n")
	}

	middleware.SetSecretKey(cfg.JWTSecret)

	// Services setup
	imageService := services.NewImageService(cfg.PublicDir)
	indexService := services.NewIndexService(cfg.ProjectsDir)
	projectService, err := services.NewProjectService(cfg.ProjectsDir, imageService, indexService)
	if err != nil {
		log.Fatalf("Error initializing project store: %v\n", err)
	}
	authService, err := services.NewAuthService(cfg.AdminPasswordHash, cfg.AdminPassword, cfg.SessionDuration)
	if err != nil {
		log.Fatalf("Error initializing auth: %v\n", err)
	}

	// Gin router setup
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(405, gin.H{"error": "Method not allowed"})
	})
	router.Use(middleware.SetupCORS(cfg.CORSOrigins))

	// Routes setup
	routes.SetupAuthRoutes(router, authService, cfg.SecureCookies)
	routes.SetupProjectRoutes(router, projectService)
	routes.SetupUploadRoutes(router, imageService)

	// Uploaded images are served straight from the public root
	router.Static("/projects", filepath.Join(cfg.PublicDir, "projects"))

	// Server run
	if err := router.Run(cfg.ServerHost); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", cfg.ServerHost, err)
	}
}
