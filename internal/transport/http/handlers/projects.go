package http_handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mkassar/portfolio-backend/internal/application/project"
	"github.com/mkassar/portfolio-backend/internal/logger"
	"github.com/mkassar/portfolio-backend/internal/transport/http/dto"
	"github.com/mkassar/portfolio-backend/internal/transport/http/response"
)

type ProjectHandler struct {
	svc *project.Service
}

func NewProjectHandler(svc *project.Service) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List handles GET /projects?category=...&featured=true&search=...
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := project.ListFilter{
		CategoryID: strings.TrimSpace(q.Get("category")),
		Search:     strings.TrimSpace(q.Get("search")),
	}
	if raw := q.Get("featured"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.Featured = &v
		}
	}

	projects, err := h.svc.List(r.Context(), f)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewProjectViews(projects))
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewProjectView(p))
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), projectInput(req))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("project_id", p.ID).
		Msg("project_created")

	response.Created(w, dto.NewProjectView(p))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), projectInput(req))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewProjectView(p))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("project_id", id).
		Msg("project_deleted")

	response.NoContent(w)
}

func (h *ProjectHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectImageRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	img, err := h.svc.AddImage(r.Context(), chi.URLParam(r, "id"), req.ImageURL, req.Position)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.ProjectImageView{
		ID:       img.ID,
		ImageURL: img.ImageURL,
		Position: img.Position,
	})
}

func (h *ProjectHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteImage(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "imageID"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *ProjectHandler) ReorderImages(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderImagesRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.ReorderImages(r.Context(), chi.URLParam(r, "id"), req.ImageIDs); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}

func projectInput(req dto.ProjectRequest) project.ProjectInput {
	return project.ProjectInput{
		Title:         req.Title,
		TitleAr:       req.TitleAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
		Client:        req.Client,
		Date:          req.Date,
		Featured:      req.Featured,
	}
}
