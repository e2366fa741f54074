package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalAcceptsNumericID(t *testing.T) {
	data := []byte(`{"id": 1, "title": "Bocci Showroom", "category": "Architecture"}`)

	var project Project
	require.NoError(t, json.Unmarshal(data, &project))
	assert.Equal(t, "1", project.ID)
}

func TestUnmarshalAcceptsStringID(t *testing.T) {
	data := []byte(`{"id": "1736602845123", "title": "Surrey House"}`)

	var project Project
	require.NoError(t, json.Unmarshal(data, &project))
	assert.Equal(t, "1736602845123", project.ID)
}

func TestNormalizeUnknownCategory(t *testing.T) {
	project := Project{ID: "1", Title: "Legacy", Category: "Architecture"}
	project.Normalize()
	assert.Equal(t, CategoryAll, project.Category)

	project = Project{ID: "2", Title: "Modern", Category: CategoryResearch}
	project.Normalize()
	assert.Equal(t, CategoryResearch, project.Category)
}

func TestNormalizeLegacySectionImage(t *testing.T) {
	project := Project{
		ID:       "1",
		Title:    "Legacy",
		Category: CategoryProduct,
		Sections: []ProjectSection{
			{
				Title:         "Overview",
				LegacyImage:   "/projects/1/sections/overview.jpg",
				LegacyAlt:     "Overview image",
				LegacyCaption: "Main space",
			},
		},
	}

	project.Normalize()

	require.Len(t, project.Sections[0].Images, 1)
	img := project.Sections[0].Images[0]
	assert.Equal(t, "/projects/1/sections/overview.jpg", img.Src)
	assert.Equal(t, "Overview image", img.Alt)
	assert.Equal(t, "Main space", img.Caption)
	assert.Empty(t, project.Sections[0].LegacyImage)
}

func TestNormalizeKeepsCanonicalSectionImages(t *testing.T) {
	project := Project{
		ID:       "1",
		Title:    "Canonical",
		Category: CategoryProduct,
		Sections: []ProjectSection{
			{
				Images:      []ProjectImage{{Src: "/projects/1/sections/a.jpg"}},
				LegacyImage: "/projects/1/sections/ignored.jpg",
			},
		},
	}

	project.Normalize()

	require.Len(t, project.Sections[0].Images, 1)
	assert.Equal(t, "/projects/1/sections/a.jpg", project.Sections[0].Images[0].Src)
}

func TestValidate(t *testing.T) {
	project := Project{ID: "1", Title: "Valid"}
	assert.NoError(t, project.Validate())

	project = Project{Title: "No ID"}
	assert.Error(t, project.Validate())

	project = Project{ID: "1", Title: "  "}
	assert.Error(t, project.Validate())
}
