package project

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// Category management. Listings are public; mutations are superuser-only at
// the transport layer.

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Category{}, domain.ErrMissingField("id")
	}
	return s.categories.GetByID(ctx, id)
}

type CategoryInput struct {
	Name   string
	NameAr string
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Category{}, domain.ErrMissingField("name")
	}
	return s.categories.Create(ctx, domain.Category{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(in.Name),
		NameAr: strings.TrimSpace(in.NameAr),
	})
}

func (s *Service) UpdateCategory(ctx context.Context, id string, in CategoryInput) (domain.Category, error) {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.Category{}, domain.ErrMissingField("name")
	}
	c.Name = strings.TrimSpace(in.Name)
	c.NameAr = strings.TrimSpace(in.NameAr)
	return s.categories.Update(ctx, c)
}

// DeleteCategory fails with a conflict while projects still reference the
// category; the store enforces that.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrMissingField("id")
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}
