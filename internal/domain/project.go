package domain

import "time"

// Category groups projects; names are bilingual (English + Arabic).
type Category struct {
	ID        string
	Name      string
	NameAr    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Project struct {
	ID            string
	Title         string
	TitleAr       string
	Description   string
	DescriptionAr string
	CategoryID    string
	ImageURL      string
	Client        string
	Date          time.Time
	Featured      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Gallery images, sorted by Position ascending.
	Images []ProjectImage
}

type ProjectImage struct {
	ID        string
	ProjectID string
	ImageURL  string
	Position  int
}
