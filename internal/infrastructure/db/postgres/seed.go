package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkassar/portfolio-backend/internal/domain"
	"github.com/mkassar/portfolio-backend/internal/logger"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederUserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

type SeederCategoryRepo interface {
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
}

// SeedUsers creates the bootstrap accounts for a fresh database. Duplicates
// are ignored so restarts are safe.
func SeedUsers(ctx context.Context, repo SeederUserRepo, hasher SeederHasher) {
	type seedUser struct {
		Email     string
		Username  string
		Name      string
		Role      string
		Pass      string
		Staff     bool
		Superuser bool
	}

	seeds := []seedUser{
		{Email: "admin@example.com", Username: "admin", Name: "Administrator", Role: "admin", Pass: "AdminPassword123!", Staff: true, Superuser: true},
		{Email: "staff@example.com", Username: "staff", Name: "Staff Member", Role: "user", Pass: "StaffPassword123!", Staff: true},
		{Email: "user@example.com", Username: "user", Name: "Demo User", Role: "user", Pass: "UserPassword123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			logger.Logger.Warn().Err(err).Str("email", s.Email).Msg("seed: hash failed")
			continue
		}

		_, err = repo.Create(ctx, domain.User{
			ID:            uuid.NewString(),
			Email:         s.Email,
			Username:      s.Username,
			Name:          s.Name,
			PasswordHash:  hash,
			Role:          s.Role,
			IsActive:      true,
			EmailVerified: true,
			IsStaff:       s.Staff,
			IsSuperuser:   s.Superuser,
		})
		if err != nil {
			// ignore duplicates (restart safe)
			continue
		}
	}

	logger.Logger.Info().Msg("seed: users seeded")
}

// SeedCategories creates the default portfolio categories.
func SeedCategories(ctx context.Context, repo SeederCategoryRepo) {
	seeds := []domain.Category{
		{Name: "Branding", NameAr: "هوية بصرية"},
		{Name: "Social Media", NameAr: "سوشيال ميديا"},
		{Name: "Motion Graphics", NameAr: "موشن جرافيك"},
	}

	for _, c := range seeds {
		c.ID = uuid.NewString()
		if _, err := repo.Create(ctx, c); err != nil {
			continue
		}
	}

	logger.Logger.Info().Msg("seed: categories seeded")
}
