package http_handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mkassar/portfolio-backend/internal/application/jobs"
	"github.com/mkassar/portfolio-backend/internal/logger"
	"github.com/mkassar/portfolio-backend/internal/transport/http/dto"
	"github.com/mkassar/portfolio-backend/internal/transport/http/response"
)

type JobHandler struct {
	svc *jobs.Service
}

func NewJobHandler(svc *jobs.Service) *JobHandler {
	return &JobHandler{svc: svc}
}

// Apply is the public job application endpoint.
func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.JobApplicationRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	a, err := h.svc.Apply(r.Context(), jobs.ApplyInput{
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		CityCountry:          req.CityCountry,
		Position:             req.Position,
		WorkType:             req.WorkType,
		YearsOfExperience:    req.YearsOfExperience,
		AboutYou:             req.AboutYou,
		Tools:                req.Tools,
		PortfolioLink:        req.PortfolioLink,
		WorkedInAgencyBefore: req.WorkedInAgencyBefore,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("application_id", a.ID).
		Str("position", a.Position).
		Msg("job_application_submitted")

	response.Created(w, dto.JobSubmittedData{
		ID:      a.ID,
		Message: jobs.SubmittedMessage,
	})
}

// List handles GET /jobs?position=...&work_type=... for staff.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := jobs.ListFilter{
		Position: strings.TrimSpace(q.Get("position")),
		WorkType: strings.TrimSpace(q.Get("work_type")),
	}

	apps, err := h.svc.List(r.Context(), f)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewJobApplicationViews(apps))
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewJobApplicationView(a))
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}
