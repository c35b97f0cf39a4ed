package project

import (
	"context"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// ListFilter narrows project listings. Zero value means "everything".
type ListFilter struct {
	CategoryID string
	Featured   *bool
	// Search matches title and description in both languages.
	Search string
}

type ProjectRepo interface {
	List(ctx context.Context, f ListFilter) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (domain.Project, error)
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	Update(ctx context.Context, p domain.Project) (domain.Project, error)
	Delete(ctx context.Context, id string) error

	AddImage(ctx context.Context, img domain.ProjectImage) (domain.ProjectImage, error)
	DeleteImage(ctx context.Context, projectID, imageID string) error
	// ReorderImages rewrites gallery positions to match the given ID order.
	ReorderImages(ctx context.Context, projectID string, imageIDs []string) error
}

type CategoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (domain.Category, error)
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
	Update(ctx context.Context, c domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// Cache is a read-through JSON cache. Get reports whether the key was
// present; a miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
