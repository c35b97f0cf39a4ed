package dto

import (
	"strings"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// -------- requests --------

type ProjectRequest struct {
	Title         string    `json:"title" validate:"required,max=200"`
	TitleAr       string    `json:"title_ar" validate:"max=200"`
	Description   string    `json:"description" validate:"required"`
	DescriptionAr string    `json:"description_ar"`
	CategoryID    string    `json:"category_id" validate:"required"`
	ImageURL      string    `json:"image_url" validate:"omitempty,url"`
	Client        string    `json:"client" validate:"max=200"`
	Date          time.Time `json:"date"`
	Featured      bool      `json:"featured"`
}

func (r *ProjectRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return check(r)
}

type CategoryRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	NameAr string `json:"name_ar" validate:"max=100"`
}

func (r *CategoryRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return check(r)
}

type ProjectImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Position int    `json:"position" validate:"min=0"`
}

func (r *ProjectImageRequest) Validate() error {
	return check(r)
}

type ReorderImagesRequest struct {
	ImageIDs []string `json:"image_ids" validate:"required,min=1"`
}

func (r *ReorderImagesRequest) Validate() error {
	return check(r)
}

// -------- responses --------

type ProjectImageView struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}

type ProjectView struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	TitleAr       string             `json:"title_ar,omitempty"`
	Description   string             `json:"description"`
	DescriptionAr string             `json:"description_ar,omitempty"`
	CategoryID    string             `json:"category_id"`
	ImageURL      string             `json:"image_url,omitempty"`
	Client        string             `json:"client,omitempty"`
	Date          time.Time          `json:"date"`
	Featured      bool               `json:"featured"`
	Images        []ProjectImageView `json:"images"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func NewProjectView(p domain.Project) ProjectView {
	images := make([]ProjectImageView, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProjectImageView{
			ID:       img.ID,
			ImageURL: img.ImageURL,
			Position: img.Position,
		})
	}
	return ProjectView{
		ID:            p.ID,
		Title:         p.Title,
		TitleAr:       p.TitleAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		CategoryID:    p.CategoryID,
		ImageURL:      p.ImageURL,
		Client:        p.Client,
		Date:          p.Date,
		Featured:      p.Featured,
		Images:        images,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func NewProjectViews(projects []domain.Project) []ProjectView {
	out := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectView(p))
	}
	return out
}

type CategoryView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"name_ar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCategoryView(c domain.Category) CategoryView {
	return CategoryView{
		ID:        c.ID,
		Name:      c.Name,
		NameAr:    c.NameAr,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewCategoryViews(categories []domain.Category) []CategoryView {
	out := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryView(c))
	}
	return out
}
