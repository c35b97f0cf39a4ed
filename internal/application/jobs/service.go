package jobs

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

const SubmittedMessage = "Application submitted successfully."

type Repo interface {
	List(ctx context.Context, f ListFilter) ([]domain.JobApplication, error)
	GetByID(ctx context.Context, id string) (domain.JobApplication, error)
	Create(ctx context.Context, a domain.JobApplication) (domain.JobApplication, error)
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	Position string
	WorkType string
}

type Service struct {
	applications Repo
}

func NewService(applications Repo) *Service {
	return &Service{applications: applications}
}

type ApplyInput struct {
	FullName             string
	Email                string
	Phone                string
	CityCountry          string
	Position             string
	WorkType             string
	YearsOfExperience    string
	AboutYou             string
	Tools                []string
	PortfolioLink        string
	WorkedInAgencyBefore bool
}

// Apply records a public job application. The position, work type and
// experience values come from fixed vocabularies.
func (s *Service) Apply(ctx context.Context, in ApplyInput) (domain.JobApplication, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.FullName == "" {
		return domain.JobApplication{}, domain.ErrMissingField("full_name")
	}
	if in.Email == "" {
		return domain.JobApplication{}, domain.ErrMissingField("email")
	}
	if in.Phone == "" {
		return domain.JobApplication{}, domain.ErrMissingField("phone")
	}
	if !domain.IsValidPosition(in.Position) {
		return domain.JobApplication{}, domain.ErrInvalidField("position", "unknown position")
	}
	if !domain.IsValidWorkType(in.WorkType) {
		return domain.JobApplication{}, domain.ErrInvalidField("work_type", "unknown work type")
	}
	if !domain.IsValidExperience(in.YearsOfExperience) {
		return domain.JobApplication{}, domain.ErrInvalidField("years_of_experience", "unknown experience range")
	}

	tools := make([]string, 0, len(in.Tools))
	for _, tool := range in.Tools {
		if t := strings.TrimSpace(tool); t != "" {
			tools = append(tools, t)
		}
	}

	return s.applications.Create(ctx, domain.JobApplication{
		ID:                   uuid.NewString(),
		FullName:             in.FullName,
		Email:                in.Email,
		Phone:                strings.TrimSpace(in.Phone),
		CityCountry:          strings.TrimSpace(in.CityCountry),
		Position:             in.Position,
		WorkType:             in.WorkType,
		YearsOfExperience:    in.YearsOfExperience,
		AboutYou:             in.AboutYou,
		Tools:                tools,
		PortfolioLink:        strings.TrimSpace(in.PortfolioLink),
		WorkedInAgencyBefore: in.WorkedInAgencyBefore,
	})
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.JobApplication, error) {
	if f.Position != "" && !domain.IsValidPosition(f.Position) {
		return nil, domain.ErrInvalidField("position", "unknown position")
	}
	if f.WorkType != "" && !domain.IsValidWorkType(f.WorkType) {
		return nil, domain.ErrInvalidField("work_type", "unknown work type")
	}
	return s.applications.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (domain.JobApplication, error) {
	if strings.TrimSpace(id) == "" {
		return domain.JobApplication{}, domain.ErrMissingField("id")
	}
	return s.applications.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrMissingField("id")
	}
	return s.applications.Delete(ctx, id)
}
