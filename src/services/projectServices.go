package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/atelier-arc/portfolio-backend/src/models"
)

var ErrProjectNotFound = errors.New("project not found")

// CorruptRecordError marks a record file that exists but cannot be parsed.
// Get surfaces it; List skips and logs the file instead of failing the whole
// listing.
type CorruptRecordError struct {
	Path string
	Err  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt project record %s: %v", e.Path, e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }

// ProjectService stores one Project per JSON file under projectsDir and keeps
// the generated index in sync on every mutation. Images belonging to a
// project are owned by the ImageService and reclaimed on delete.
type ProjectService struct {
	projectsDir string
	images      *ImageService
	index       *IndexService
}

func NewProjectService(projectsDir string, images *ImageService, index *IndexService) (*ProjectService, error) {
	if err := os.MkdirAll(projectsDir, 0755); err != nil {
		return nil, fmt.Errorf("create projects directory: %w", err)
	}
	return &ProjectService{projectsDir: projectsDir, images: images, index: index}, nil
}

func (s *ProjectService) recordPath(id string) string {
	return filepath.Join(s.projectsDir, id+".json")
}

// GetProject reads and normalizes a single record.
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("read project %s: %w", id, err)
	}

	var project models.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, &CorruptRecordError{Path: s.recordPath(id), Err: err}
	}
	project.Normalize()
	return &project, nil
}

// loadAll reads every record file (the generated index excluded), sorted
// ascending by numeric id. Corrupt files are logged and skipped.
func (s *ProjectService) loadAll() ([]models.Project, error) {
	entries, err := os.ReadDir(s.projectsDir)
	if err != nil {
		return nil, fmt.Errorf("read projects directory: %w", err)
	}

	projects := make([]models.Project, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == IndexFileName || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(s.projectsDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Skipping unreadable project record %s: %v", path, err)
			continue
		}
		var project models.Project
		if err := json.Unmarshal(data, &project); err != nil {
			log.Printf("Skipping corrupt project record %s: %v", path, err)
			continue
		}
		project.Normalize()
		projects = append(projects, project)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return idLess(projects[i].ID, projects[j].ID)
	})
	return projects, nil
}

// idLess orders ids numerically; ids are millisecond timestamps assigned at
// creation. Non-numeric ids sort after numeric ones, lexicographically.
func idLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// ListProjects returns every record in sort order with previous/next
// references computed from the current file set.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	projects, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	return s.index.WithAdjacency(projects), nil
}

// SaveProject writes the full record, overwriting any existing file for the
// same id, then rebuilds the index. The record write is durable even when the
// index rewrite fails; retrying the save rebuilds the index from disk.
func (s *ProjectService) SaveProject(project *models.Project) error {
	project.Normalize()
	if err := project.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project %s: %w", project.ID, err)
	}
	if err := os.WriteFile(s.recordPath(project.ID), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write project %s: %w", project.ID, err)
	}

	return s.rebuildIndex()
}

// DeleteProject removes the record file and the project's image subtree,
// then rebuilds the index. A missing record is not an error.
func (s *ProjectService) DeleteProject(id string) error {
	if err := os.Remove(s.recordPath(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if err := s.images.DeleteProjectImages(id); err != nil {
		return fmt.Errorf("delete project images %s: %w", id, err)
	}
	return s.rebuildIndex()
}

func (s *ProjectService) rebuildIndex() error {
	projects, err := s.loadAll()
	if err != nil {
		return err
	}
	return s.index.Write(s.index.WithAdjacency(projects))
}
