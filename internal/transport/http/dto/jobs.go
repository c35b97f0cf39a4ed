package dto

import (
	"strings"
	"time"

	"github.com/mkassar/portfolio-backend/internal/domain"
)

type JobApplicationRequest struct {
	FullName             string   `json:"full_name" validate:"required,max=120"`
	Email                string   `json:"email" validate:"required,email"`
	Phone                string   `json:"phone" validate:"required,max=30"`
	CityCountry          string   `json:"city_country" validate:"max=120"`
	Position             string   `json:"position" validate:"required,oneof=graphic_designer motion_designer content_creator media_buyer"`
	WorkType             string   `json:"work_type" validate:"required,oneof=full_time part_time remote internship"`
	YearsOfExperience    string   `json:"years_of_experience" validate:"required,oneof=0_1 1_3 3_5 5_plus"`
	AboutYou             string   `json:"about_you" validate:"max=5000"`
	Tools                []string `json:"tools" validate:"max=30,dive,max=60"`
	PortfolioLink        string   `json:"portfolio_link" validate:"omitempty,url"`
	WorkedInAgencyBefore bool     `json:"worked_in_agency_before"`
}

func (r *JobApplicationRequest) Validate() error {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	return check(r)
}

type JobSubmittedData struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type JobApplicationView struct {
	ID                   string    `json:"id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	CityCountry          string    `json:"city_country,omitempty"`
	Position             string    `json:"position"`
	WorkType             string    `json:"work_type"`
	YearsOfExperience    string    `json:"years_of_experience"`
	AboutYou             string    `json:"about_you,omitempty"`
	Tools                []string  `json:"tools"`
	PortfolioLink        string    `json:"portfolio_link,omitempty"`
	WorkedInAgencyBefore bool      `json:"worked_in_agency_before"`
	SubmittedAt          time.Time `json:"submitted_at"`
}

func NewJobApplicationView(a domain.JobApplication) JobApplicationView {
	return JobApplicationView{
		ID:                   a.ID,
		FullName:             a.FullName,
		Email:                a.Email,
		Phone:                a.Phone,
		CityCountry:          a.CityCountry,
		Position:             a.Position,
		WorkType:             a.WorkType,
		YearsOfExperience:    a.YearsOfExperience,
		AboutYou:             a.AboutYou,
		Tools:                a.Tools,
		PortfolioLink:        a.PortfolioLink,
		WorkedInAgencyBefore: a.WorkedInAgencyBefore,
		SubmittedAt:          a.SubmittedAt,
	}
}

func NewJobApplicationViews(apps []domain.JobApplication) []JobApplicationView {
	out := make([]JobApplicationView, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewJobApplicationView(a))
	}
	return out
}
