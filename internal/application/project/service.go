package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkassar/portfolio-backend/internal/domain"
	"github.com/mkassar/portfolio-backend/internal/logger"
)

// Cache keys. Only the two hot public listings are cached; filtered and
// searched listings always hit the store.
const (
	cacheKeyAllProjects      = "projects:list:all"
	cacheKeyFeaturedProjects = "projects:list:featured"
)

type Service struct {
	projects   ProjectRepo
	categories CategoryRepo
	cache      Cache // nil disables caching
	cacheTTL   time.Duration
}

func NewService(projects ProjectRepo, categories CategoryRepo, cache Cache, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &Service{
		projects:   projects,
		categories: categories,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// List returns projects matching the filter, newest first. The unfiltered
// and featured-only listings are served read-through from cache.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Project, error) {
	key := listCacheKey(f)
	if s.cache != nil && key != "" {
		var cached []domain.Project
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			// Degrade to the store on cache trouble.
			logger.WithCtx(ctx).Warn().Err(err).Str("key", key).Msg("project cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	out, err := s.projects.List(ctx, f)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && key != "" {
		if err := s.cache.Set(ctx, key, out, s.cacheTTL); err != nil {
			logger.WithCtx(ctx).Warn().Err(err).Str("key", key).Msg("project cache write failed")
		}
	}
	return out, nil
}

func listCacheKey(f ListFilter) string {
	if f.CategoryID != "" || f.Search != "" {
		return ""
	}
	if f.Featured == nil {
		return cacheKeyAllProjects
	}
	if *f.Featured {
		return cacheKeyFeaturedProjects
	}
	return ""
}

func (s *Service) Get(ctx context.Context, id string) (domain.Project, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Project{}, domain.ErrMissingField("id")
	}
	return s.projects.GetByID(ctx, id)
}

type ProjectInput struct {
	Title         string
	TitleAr       string
	Description   string
	DescriptionAr string
	CategoryID    string
	ImageURL      string
	Client        string
	Date          time.Time
	Featured      bool
}

func (s *Service) Create(ctx context.Context, in ProjectInput) (domain.Project, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return domain.Project{}, err
	}

	created, err := s.projects.Create(ctx, domain.Project{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(in.Title),
		TitleAr:       strings.TrimSpace(in.TitleAr),
		Description:   in.Description,
		DescriptionAr: in.DescriptionAr,
		CategoryID:    in.CategoryID,
		ImageURL:      in.ImageURL,
		Client:        strings.TrimSpace(in.Client),
		Date:          in.Date,
		Featured:      in.Featured,
	})
	if err != nil {
		return domain.Project{}, err
	}

	s.invalidateListings(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in ProjectInput) (domain.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if err := s.validateInput(ctx, in); err != nil {
		return domain.Project{}, err
	}

	p.Title = strings.TrimSpace(in.Title)
	p.TitleAr = strings.TrimSpace(in.TitleAr)
	p.Description = in.Description
	p.DescriptionAr = in.DescriptionAr
	p.CategoryID = in.CategoryID
	p.ImageURL = in.ImageURL
	p.Client = strings.TrimSpace(in.Client)
	p.Date = in.Date
	p.Featured = in.Featured

	updated, err := s.projects.Update(ctx, p)
	if err != nil {
		return domain.Project{}, err
	}

	s.invalidateListings(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrMissingField("id")
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *Service) validateInput(ctx context.Context, in ProjectInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.ErrMissingField("title")
	}
	if strings.TrimSpace(in.Description) == "" {
		return domain.ErrMissingField("description")
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return domain.ErrMissingField("category_id")
	}
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		return err
	}
	return nil
}

// invalidateListings drops the cached listings after a mutation. Best effort:
// TTL bounds staleness if the delete fails.
func (s *Service) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyAllProjects, cacheKeyFeaturedProjects); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Msg("project cache invalidation failed")
	}
}

// --- gallery images ---

func (s *Service) AddImage(ctx context.Context, projectID, imageURL string, position int) (domain.ProjectImage, error) {
	if strings.TrimSpace(imageURL) == "" {
		return domain.ProjectImage{}, domain.ErrMissingField("image_url")
	}
	if position < 0 {
		return domain.ProjectImage{}, domain.ErrInvalidField("position", "must not be negative")
	}
	if _, err := s.Get(ctx, projectID); err != nil {
		return domain.ProjectImage{}, err
	}

	img, err := s.projects.AddImage(ctx, domain.ProjectImage{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		ImageURL:  imageURL,
		Position:  position,
	})
	if err != nil {
		return domain.ProjectImage{}, err
	}

	s.invalidateListings(ctx)
	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, projectID, imageID string) error {
	if strings.TrimSpace(imageID) == "" {
		return domain.ErrMissingField("image_id")
	}
	if err := s.projects.DeleteImage(ctx, projectID, imageID); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// ReorderImages rewrites gallery order. The ID list must cover exactly the
// project's current images.
func (s *Service) ReorderImages(ctx context.Context, projectID string, imageIDs []string) error {
	if len(imageIDs) == 0 {
		return domain.ErrMissingField("image_ids")
	}

	p, err := s.Get(ctx, projectID)
	if err != nil {
		return err
	}
	if len(imageIDs) != len(p.Images) {
		return domain.ErrInvalidField("image_ids", "must list every gallery image exactly once")
	}
	known := make(map[string]bool, len(p.Images))
	for _, img := range p.Images {
		known[img.ID] = true
	}
	seen := make(map[string]bool, len(imageIDs))
	for _, id := range imageIDs {
		if !known[id] || seen[id] {
			return domain.ErrInvalidField("image_ids", "must list every gallery image exactly once")
		}
		seen[id] = true
	}

	if err := s.projects.ReorderImages(ctx, projectID, imageIDs); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}
