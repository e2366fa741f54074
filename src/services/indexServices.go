package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atelier-arc/portfolio-backend/src/models"
)

// IndexFileName is the generated listing artifact inside the projects
// directory. It is rewritten wholesale after every mutation and never
// hand-edited.
const IndexFileName = "index.json"

type IndexService struct {
	projectsDir string
}

func NewIndexService(projectsDir string) *IndexService {
	return &IndexService{projectsDir: projectsDir}
}

// WithAdjacency annotates an already-sorted slice with previous/next
// references. The first element gets no previous, the last no next. Any
// stale references on the inputs are cleared first, so the result is a pure
// function of the slice order.
func (s *IndexService) WithAdjacency(projects []models.Project) []models.Project {
	for i := range projects {
		projects[i].PreviousProject = nil
		projects[i].NextProject = nil
		if i > 0 {
			projects[i].PreviousProject = &models.ProjectRef{
				ID:    projects[i-1].ID,
				Title: projects[i-1].Title,
			}
		}
		if i < len(projects)-1 {
			projects[i].NextProject = &models.ProjectRef{
				ID:    projects[i+1].ID,
				Title: projects[i+1].Title,
			}
		}
	}
	return projects
}

// Write persists the annotated listing to <projectsDir>/index.json,
// pretty-printed. An empty set writes an empty array, not null.
func (s *IndexService) Write(projects []models.Project) error {
	if projects == nil {
		projects = []models.Project{}
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project index: %w", err)
	}
	path := filepath.Join(s.projectsDir, IndexFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write project index: %w", err)
	}
	return nil
}
