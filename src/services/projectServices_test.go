package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atelier-arc/portfolio-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ProjectService, string, string) {
	t.Helper()
	projectsDir := filepath.Join(t.TempDir(), "projects")
	publicDir := t.TempDir()

	images := NewImageService(publicDir)
	index := NewIndexService(projectsDir)
	service, err := NewProjectService(projectsDir, images, index)
	require.NoError(t, err)
	return service, projectsDir, publicDir
}

func saveProject(t *testing.T, service *ProjectService, id, title string) {
	t.Helper()
	require.NoError(t, service.SaveProject(&models.Project{ID: id, Title: title, Category: models.CategoryResearch}))
}

func TestSaveAndGetRoundtrip(t *testing.T) {
	service, _, _ := newTestStore(t)

	project := models.Project{
		ID:          "1736602845123",
		Number:      "84",
		Title:       "Bocci Showroom Berlin",
		Year:        "2023",
		Category:    models.CategorySensorial,
		Image:       "/projects/1736602845123/cover.jpg",
		Description: "Former Courthouse, Berlin, Germany",
		Details: models.ProjectDetails{
			Location:  "Berlin, Germany",
			Year:      "2023",
			Status:    "Completed",
			Area:      "1,200 sqm",
			Client:    "Bocci",
			Architect: "Studio",
		},
		Sections: []models.ProjectSection{
			{
				Title:   "Overview",
				Content: []string{"First paragraph.", "Second paragraph."},
				Images: []models.ProjectImage{
					{Src: "/projects/1736602845123/sections/overview.jpg", Alt: "Overview", Caption: "Main space"},
				},
				Layout: models.LayoutFullwidth,
			},
		},
		Images: []string{
			"/projects/1736602845123/gallery/01.jpg",
			"/projects/1736602845123/gallery/02.jpg",
		},
		Featured: &models.FeaturedPublication{
			URL:         "https://example.com/feature",
			Platform:    "Dezeen",
			Publication: "Dezeen Daily",
			Label:       "Featured on Dezeen",
		},
	}

	require.NoError(t, service.SaveProject(&project))

	got, err := service.GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, project, *got)
}

func TestGetProjectNotFound(t *testing.T) {
	service, _, _ := newTestStore(t)

	_, err := service.GetProject("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetCorruptRecord(t *testing.T) {
	service, projectsDir, _ := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(projectsDir, "1000.json"), []byte("{not json"), 0644))

	_, err := service.GetProject("1000")
	var corrupt *CorruptRecordError
	assert.ErrorAs(t, err, &corrupt)
}

func TestSaveRequiresIDAndTitle(t *testing.T) {
	service, _, _ := newTestStore(t)

	assert.Error(t, service.SaveProject(&models.Project{Title: "No ID"}))
	assert.Error(t, service.SaveProject(&models.Project{ID: "1000"}))
}

func TestListOrderingAndAdjacency(t *testing.T) {
	service, _, _ := newTestStore(t)
	saveProject(t, service, "1000", "A")
	saveProject(t, service, "1001", "B")
	saveProject(t, service, "1002", "C")

	projects, err := service.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, []string{"A", "B", "C"}, []string{projects[0].Title, projects[1].Title, projects[2].Title})

	assert.Nil(t, projects[0].PreviousProject)
	assert.Equal(t, &models.ProjectRef{ID: "1001", Title: "B"}, projects[0].NextProject)
	assert.Equal(t, &models.ProjectRef{ID: "1000", Title: "A"}, projects[1].PreviousProject)
	assert.Equal(t, &models.ProjectRef{ID: "1002", Title: "C"}, projects[1].NextProject)
	assert.Equal(t, &models.ProjectRef{ID: "1001", Title: "B"}, projects[2].PreviousProject)
	assert.Nil(t, projects[2].NextProject)
}

func TestListSortsByNumericID(t *testing.T) {
	service, _, _ := newTestStore(t)
	// Lexicographic order would put "900" after "1000"
	saveProject(t, service, "1000", "Later")
	saveProject(t, service, "900", "Earlier")

	projects, err := service.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "900", projects[0].ID)
	assert.Equal(t, "1000", projects[1].ID)
}

func TestDeleteRelinksNeighbors(t *testing.T) {
	service, _, _ := newTestStore(t)
	saveProject(t, service, "1000", "A")
	saveProject(t, service, "1001", "B")
	saveProject(t, service, "1002", "C")

	require.NoError(t, service.DeleteProject("1001"))

	_, err := service.GetProject("1001")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	projects, err := service.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, &models.ProjectRef{ID: "1002", Title: "C"}, projects[0].NextProject)
	assert.Equal(t, &models.ProjectRef{ID: "1000", Title: "A"}, projects[1].PreviousProject)
}

func TestDeleteMissingProjectIsNoOp(t *testing.T) {
	service, _, _ := newTestStore(t)
	assert.NoError(t, service.DeleteProject("nope"))
}

func TestDeleteRemovesImageSubtree(t *testing.T) {
	service, _, publicDir := newTestStore(t)
	saveProject(t, service, "1000", "A")

	imageDir := filepath.Join(publicDir, "projects", "1000", "gallery")
	require.NoError(t, os.MkdirAll(imageDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(imageDir, "01.jpg"), []byte("img"), 0644))

	require.NoError(t, service.DeleteProject("1000"))

	_, err := os.Stat(filepath.Join(publicDir, "projects", "1000"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestListSkipsCorruptRecords(t *testing.T) {
	service, projectsDir, _ := newTestStore(t)
	saveProject(t, service, "1000", "A")
	require.NoError(t, os.WriteFile(filepath.Join(projectsDir, "2000.json"), []byte("{broken"), 0644))

	projects, err := service.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "1000", projects[0].ID)
}

func TestIndexFileRegeneratedOnSave(t *testing.T) {
	service, projectsDir, _ := newTestStore(t)
	saveProject(t, service, "1000", "A")
	saveProject(t, service, "1001", "B")

	indexPath := filepath.Join(projectsDir, IndexFileName)
	data, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"nextProject"`)

	require.NoError(t, service.DeleteProject("1001"))
	data, err = os.ReadFile(indexPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "1001")
}

func TestIndexRebuildIsIdempotent(t *testing.T) {
	service, projectsDir, _ := newTestStore(t)
	saveProject(t, service, "1000", "A")
	saveProject(t, service, "1001", "B")

	indexPath := filepath.Join(projectsDir, IndexFileName)
	first, err := os.ReadFile(indexPath)
	require.NoError(t, err)

	require.NoError(t, service.rebuildIndex())

	second, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIndexExcludedFromListing(t *testing.T) {
	service, _, _ := newTestStore(t)
	saveProject(t, service, "1000", "A")

	projects, err := service.ListProjects()
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}
