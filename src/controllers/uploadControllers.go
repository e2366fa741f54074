package controllers

import (
	"errors"

	"github.com/atelier-arc/portfolio-backend/src/services"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	service *services.ImageService
}

func NewUploadController(service *services.ImageService) *UploadController {
	return &UploadController{service: service}
}

// UploadImage accepts a multipart form with a file, a projectId and an
// optional section tag, and returns the stored image's public URL.
func (uc *UploadController) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	projectID := c.PostForm("projectId")
	section := c.PostForm("section")

	url, err := uc.service.SaveImage(file, header.Header.Get("Content-Type"), header.Filename, projectID, section)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingProjectID):
			c.JSON(400, gin.H{"error": "Project ID is required"})
		case errors.Is(err, services.ErrUnsupportedType):
			c.JSON(400, gin.H{"error": "File must be an image"})
		default:
			c.JSON(500, gin.H{"error": "Could not save file"})
		}
		return
	}

	c.JSON(200, gin.H{"url": url, "success": true})
}
