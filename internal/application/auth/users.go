package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

// Administrative user management, exposed under the admin/staff-gated users
// resource.

func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

type AdminCreateUserInput struct {
	Email         string
	Username      string
	Name          string
	Password      string
	Role          string
	IsActive      bool
	EmailVerified bool
	IsStaff       bool
}

// AdminCreateUser may create accounts that are active and verified from the
// start, unlike public registration.
func (s *Service) AdminCreateUser(ctx context.Context, in AdminCreateUserInput) (domain.User, error) {
	in.Email = normalizeEmail(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	if in.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if in.Username == "" {
		return domain.User{}, domain.ErrMissingField("username")
	}
	if in.Password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}
	if in.Role == "" {
		in.Role = string(domain.RoleUser)
	}
	if !domain.IsValidRole(in.Role) {
		return domain.User{}, domain.ErrInvalidRole(in.Role)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	// Verified implies active; never persist verified+inactive here.
	active := in.IsActive || in.EmailVerified

	created, err := s.users.Create(ctx, domain.User{
		ID:            uuid.NewString(),
		Email:         in.Email,
		Username:      in.Username,
		Name:          strings.TrimSpace(in.Name),
		PasswordHash:  hash,
		Role:          in.Role,
		IsActive:      active,
		EmailVerified: in.EmailVerified,
		IsStaff:       in.IsStaff,
	})
	if err != nil {
		return domain.User{}, err
	}

	s.audit("admin_user_created", map[string]string{"user_id": created.ID})
	return created, nil
}

type UpdateUserInput struct {
	Email           *string
	Username        *string
	Name            *string
	Role            *string
	IsActive        *bool
	EmailVerified   *bool
	IsStaff         *bool
	Password        string
	PasswordConfirm string
}

// UpdateUser applies a partial update. Changing email or username re-checks
// uniqueness excluding the record itself (enforced by the repo). A password
// change requires both password fields, matching.
func (s *Service) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if in.Email != nil {
		u.Email = normalizeEmail(*in.Email)
		if u.Email == "" {
			return domain.User{}, domain.ErrMissingField("email")
		}
	}
	if in.Username != nil {
		u.Username = strings.TrimSpace(*in.Username)
		if u.Username == "" {
			return domain.User{}, domain.ErrMissingField("username")
		}
	}
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Role != nil {
		if !domain.IsValidRole(*in.Role) {
			return domain.User{}, domain.ErrInvalidRole(*in.Role)
		}
		u.Role = *in.Role
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.EmailVerified != nil {
		u.EmailVerified = *in.EmailVerified
		if u.EmailVerified {
			u.IsActive = true
		}
	}
	if in.IsStaff != nil {
		u.IsStaff = *in.IsStaff
	}

	if in.Password != "" || in.PasswordConfirm != "" {
		if in.Password == "" || in.PasswordConfirm == "" {
			return domain.User{}, domain.ErrInvalidField("password", "both password fields must be provided together")
		}
		if in.Password != in.PasswordConfirm {
			return domain.User{}, domain.ErrPasswordMismatch()
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return domain.User{}, domain.ErrHashFailed(err)
		}
		u.PasswordHash = hash
	}

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	s.audit("user_updated", map[string]string{"user_id": updated.ID})
	return updated, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrMissingField("id")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.audit("user_deleted", map[string]string{"user_id": id})
	return nil
}
