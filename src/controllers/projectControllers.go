package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/atelier-arc/portfolio-backend/src/models"
	"github.com/atelier-arc/portfolio-backend/src/services"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	service *services.ProjectService
}

func NewProjectController(service *services.ProjectService) *ProjectController {
	return &ProjectController{service: service}
}

// GetProjects handles GET requests for the full ordered listing with
// previous/next references.
func (pc *ProjectController) GetProjects(c *gin.Context) {
	projects, err := pc.service.ListProjects()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(200, projects)
}

func (pc *ProjectController) GetProjectByID(c *gin.Context) {
	id := c.Param("id")

	project, err := pc.service.GetProject(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(404, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, project)
}

// CreateProject accepts a full project document. A missing id is assigned
// from the current millisecond clock; records are otherwise written as sent.
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(project.ID) == "" {
		project.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if strings.TrimSpace(project.Title) == "" {
		c.JSON(400, gin.H{"error": "Project title is required"})
		return
	}

	if err := pc.service.SaveProject(&project); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, project)
}

// UpdateProject overwrites the whole record; there are no partial-field
// patch semantics.
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if project.ID == "" {
		project.ID = id
	}
	if project.ID != id {
		c.JSON(400, gin.H{"error": "Project ID does not match URL"})
		return
	}
	if strings.TrimSpace(project.Title) == "" {
		c.JSON(400, gin.H{"error": "Project title is required"})
		return
	}

	if err := pc.service.SaveProject(&project); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, project)
}

func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if strings.TrimSpace(id) == "" {
		c.JSON(400, gin.H{"error": "Project ID is required"})
		return
	}

	if err := pc.service.DeleteProject(id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true})
}

// ExportProjects streams the catalogue as an .xlsx attachment.
func (pc *ProjectController) ExportProjects(c *gin.Context) {
	data, err := pc.service.ExportXLSX()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to export projects"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="projects.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
