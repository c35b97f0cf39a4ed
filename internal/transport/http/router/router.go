package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	VerifyEmailGET(w http.ResponseWriter, r *http.Request)
	VerifyEmailPOST(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddImage(w http.ResponseWriter, r *http.Request)
	DeleteImage(w http.ResponseWriter, r *http.Request)
	ReorderImages(w http.ResponseWriter, r *http.Request)
}

type CategoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ContactHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CommentHandler interface {
	ListByProject(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health    HealthHandler
	Auth      AuthHandler
	Users     UserHandler
	Projects  ProjectHandler
	Categories CategoryHandler
	Contacts  ContactHandler
	Jobs      JobHandler
	Comments  CommentHandler

	// AuthMW requires a valid access token; OptionalAuthMW attaches the
	// caller when one is present but lets anonymous requests through.
	AuthMW         func(http.Handler) http.Handler
	OptionalAuthMW func(http.Handler) http.Handler
	StaffMW        func(http.Handler) http.Handler
	AdminMW        func(http.Handler) http.Handler

	// Per-route rate limits; nil disables the limit.
	RateLimitAuthMW  func(http.Handler) http.Handler
	RateLimitFormsMW func(http.Handler) http.Handler

	// Global middleware applied to every route, outermost first.
	Global []func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Users == nil {
		return nil, fmt.Errorf("nil Users handler")
	}
	if deps.Projects == nil {
		return nil, fmt.Errorf("nil Projects handler")
	}
	if deps.Categories == nil {
		return nil, fmt.Errorf("nil Categories handler")
	}
	if deps.Contacts == nil {
		return nil, fmt.Errorf("nil Contacts handler")
	}
	if deps.Jobs == nil {
		return nil, fmt.Errorf("nil Jobs handler")
	}
	if deps.Comments == nil {
		return nil, fmt.Errorf("nil Comments handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.OptionalAuthMW == nil {
		return nil, fmt.Errorf("nil OptionalAuth middleware")
	}
	if deps.StaffMW == nil {
		return nil, fmt.Errorf("nil Staff middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	limitAuth := deps.RateLimitAuthMW
	if limitAuth == nil {
		limitAuth = passthrough
	}
	limitForms := deps.RateLimitFormsMW
	if limitForms == nil {
		limitForms = passthrough
	}

	r := chi.NewRouter()
	for _, mw := range deps.Global {
		r.Use(mw)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/api/v1", func(r chi.Router) {
		// --- Auth ---
		r.Route("/auth", func(r chi.Router) {
			r.With(limitAuth).Post("/register", deps.Auth.Register)
			r.With(limitAuth).Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.Refresh)
			r.Get("/verify-email", deps.Auth.VerifyEmailGET) // ?token=...
			r.Post("/verify-email", deps.Auth.VerifyEmailPOST)
		})

		// --- Admin user management ---
		r.Route("/users", func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Use(deps.StaffMW)

			r.Get("/", deps.Users.List)
			r.Post("/", deps.Users.Create)
			r.Get("/{id}", deps.Users.Get)
			r.Patch("/{id}", deps.Users.Update)
			r.Delete("/{id}", deps.Users.Delete)
		})

		// --- Projects ---
		r.Route("/projects", func(r chi.Router) {
			r.With(deps.OptionalAuthMW).Get("/", deps.Projects.List)
			r.With(deps.OptionalAuthMW).Get("/{id}", deps.Projects.Get)

			r.With(deps.OptionalAuthMW).Get("/{id}/comments", deps.Comments.ListByProject)
			r.With(deps.AuthMW).Post("/{id}/comments", deps.Comments.Create)

			r.Group(func(r chi.Router) {
				r.Use(deps.AuthMW)
				r.Use(deps.StaffMW)

				r.Post("/", deps.Projects.Create)
				r.Put("/{id}", deps.Projects.Update)
				r.Delete("/{id}", deps.Projects.Delete)

				r.Post("/{id}/images", deps.Projects.AddImage)
				r.Delete("/{id}/images/{imageID}", deps.Projects.DeleteImage)
				r.Put("/{id}/images/reorder", deps.Projects.ReorderImages)
			})
		})

		// --- Comments (mutations are owner-or-admin, checked in the service) ---
		r.Route("/comments", func(r chi.Router) {
			r.Use(deps.AuthMW)

			r.Put("/{commentID}", deps.Comments.Update)
			r.Delete("/{commentID}", deps.Comments.Delete)
		})

		// --- Categories (mutations are admin-only) ---
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", deps.Categories.List)
			r.Get("/{id}", deps.Categories.Get)

			r.Group(func(r chi.Router) {
				r.Use(deps.AuthMW)
				r.Use(deps.AdminMW)

				r.Post("/", deps.Categories.Create)
				r.Put("/{id}", deps.Categories.Update)
				r.Delete("/{id}", deps.Categories.Delete)
			})
		})

		// --- Contact form ---
		r.Route("/contacts", func(r chi.Router) {
			r.With(limitForms).Post("/", deps.Contacts.Submit)

			r.Group(func(r chi.Router) {
				r.Use(deps.AuthMW)
				r.Use(deps.StaffMW)

				r.Get("/", deps.Contacts.List) // ?unread=true
				r.Get("/{id}", deps.Contacts.Get)
				r.Delete("/{id}", deps.Contacts.Delete)
			})
		})

		// --- Job applications ---
		r.Route("/jobs", func(r chi.Router) {
			r.With(limitForms).Post("/apply", deps.Jobs.Apply)

			r.Group(func(r chi.Router) {
				r.Use(deps.AuthMW)
				r.Use(deps.StaffMW)

				r.Get("/", deps.Jobs.List) // ?position=...&work_type=...
				r.Get("/{id}", deps.Jobs.Get)
				r.Delete("/{id}", deps.Jobs.Delete)
			})
		})
	})

	return r, nil
}

func passthrough(next http.Handler) http.Handler { return next }
