package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// Category is the fixed set of project categories shown in the site filter.
type Category string

const (
	CategoryAll         Category = "All"
	CategoryResearch    Category = "Research"
	CategoryProduct     Category = "Product"
	CategorySensorial   Category = "Sensorial"
	CategoryExploration Category = "Exploration"
	CategoryEducation   Category = "Education"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAll, CategoryResearch, CategoryProduct, CategorySensorial, CategoryExploration, CategoryEducation:
		return true
	}
	return false
}

// Section layouts understood by the project detail page.
const (
	LayoutSingle     = "single"
	LayoutGrid       = "grid"
	LayoutFullwidth  = "fullwidth"
	LayoutSideBySide = "sideBySide"
)

type ProjectRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ProjectImage struct {
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type ProjectSection struct {
	Title   string         `json:"title,omitempty"`
	Content []string       `json:"content,omitempty"`
	Images  []ProjectImage `json:"images,omitempty"`
	Layout  string         `json:"layout,omitempty"`

	// Legacy single-image fields from older records. Normalize folds them
	// into Images and clears them.
	LegacyImage   string `json:"image,omitempty"`
	LegacyAlt     string `json:"imageAlt,omitempty"`
	LegacyCaption string `json:"imageCaption,omitempty"`
}

type ProjectDetails struct {
	Location  string `json:"location,omitempty"`
	Year      string `json:"year,omitempty"`
	Status    string `json:"status,omitempty"`
	Area      string `json:"area,omitempty"`
	Client    string `json:"client,omitempty"`
	Architect string `json:"architect,omitempty"`
}

// FeaturedPublication links a project to an external write-up.
type FeaturedPublication struct {
	URL         string `json:"url"`
	Platform    string `json:"platform,omitempty"`
	Publication string `json:"publication,omitempty"`
	Label       string `json:"label,omitempty"`
}

// Project is one portfolio entry, persisted as <id>.json in the projects
// directory. NextProject and PreviousProject are derived from the sorted
// record set and never authored.
type Project struct {
	ID          string               `json:"id"`
	Number      string               `json:"number,omitempty"`
	Title       string               `json:"title"`
	Year        string               `json:"year,omitempty"`
	Category    Category             `json:"category"`
	Image       string               `json:"image,omitempty"`
	Description string               `json:"description,omitempty"`
	Details     ProjectDetails       `json:"details"`
	Sections    []ProjectSection     `json:"sections,omitempty"`
	Images      []string             `json:"images,omitempty"`
	Featured    *FeaturedPublication `json:"featured,omitempty"`

	NextProject     *ProjectRef `json:"nextProject,omitempty"`
	PreviousProject *ProjectRef `json:"previousProject,omitempty"`
}

// UnmarshalJSON accepts both string and numeric ids; the earliest records
// were authored with numeric ids.
func (p *Project) UnmarshalJSON(data []byte) error {
	type projectAlias Project
	aux := struct {
		ID json.RawMessage `json:"id"`
		*projectAlias
	}{projectAlias: (*projectAlias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := strings.TrimSpace(string(aux.ID))
	switch {
	case raw == "" || raw == "null":
		p.ID = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(aux.ID, &s); err != nil {
			return err
		}
		p.ID = s
	default:
		p.ID = raw
	}
	return nil
}

// Normalize rewrites legacy schema variants into the canonical shape.
// Unknown categories fall back to All so old records stay visible in the
// default listing.
func (p *Project) Normalize() {
	if !p.Category.Valid() {
		p.Category = CategoryAll
	}
	for i := range p.Sections {
		s := &p.Sections[i]
		if len(s.Images) == 0 && s.LegacyImage != "" {
			s.Images = []ProjectImage{{
				Src:     s.LegacyImage,
				Alt:     s.LegacyAlt,
				Caption: s.LegacyCaption,
			}}
		}
		s.LegacyImage, s.LegacyAlt, s.LegacyCaption = "", "", ""
	}
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("project id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("project title is required")
	}
	return nil
}
