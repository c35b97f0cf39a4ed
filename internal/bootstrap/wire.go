package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/mkassar/portfolio-backend/internal/application/auth"
	"github.com/mkassar/portfolio-backend/internal/application/comment"
	"github.com/mkassar/portfolio-backend/internal/application/contact"
	"github.com/mkassar/portfolio-backend/internal/application/jobs"
	"github.com/mkassar/portfolio-backend/internal/application/project"
	"github.com/mkassar/portfolio-backend/internal/config"
	"github.com/mkassar/portfolio-backend/internal/domain"
	"github.com/mkassar/portfolio-backend/internal/infrastructure/db/postgres"
	"github.com/mkassar/portfolio-backend/internal/infrastructure/memory"
	rabbitmq_pub "github.com/mkassar/portfolio-backend/internal/infrastructure/messaging/rabbitmq"
	"github.com/mkassar/portfolio-backend/internal/infrastructure/redis"
	"github.com/mkassar/portfolio-backend/internal/infrastructure/security"
	"github.com/mkassar/portfolio-backend/internal/logger"
	http_handlers "github.com/mkassar/portfolio-backend/internal/transport/http/handlers"
	"github.com/mkassar/portfolio-backend/internal/transport/http/middleware"
	"github.com/mkassar/portfolio-backend/internal/transport/http/response"
	"github.com/mkassar/portfolio-backend/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(dsn string) (DBCloser, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(rabbitURL, exchange string) (Publisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

type Publisher interface{}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	// 2) repositories
	userRepo := postgres.NewUserRepo(sqlDB)
	projectRepo := postgres.NewProjectRepo(sqlDB)
	categoryRepo := postgres.NewCategoryRepo(sqlDB)
	contactRepo := postgres.NewContactRepo(sqlDB)
	jobRepo := postgres.NewJobRepo(sqlDB)
	commentRepo := postgres.NewCommentRepo(sqlDB)

	// 3) redis (best-effort)
	var redisCli RedisClient
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; cache and rate limits disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	var listCache project.Cache
	if redisCli != nil {
		listCache = redisCli.(*redis.Client)
	}

	// 4) publisher
	pub, err := deps.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
	if err != nil {
		if cfg.Env == "dev" {
			logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
			pub = memory.NewNoopPublisher()
		} else {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	if c, ok := pub.(interface{ Close() error }); ok {
		cleanupFns = append(cleanupFns, func() { _ = c.Close() })
	}

	// 5) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(12)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// seed (dev only)
	if cfg.Env == "dev" {
		postgres.SeedUsers(context.Background(), userRepo, hasher)
		postgres.SeedCategories(context.Background(), categoryRepo)
	}

	// 6) services
	authSvc := auth.NewService(
		userRepo,
		hasher,
		signer,
		pub.(auth.EventPublisher),
		auth.Config{
			AccessTTL:           cfg.AccessTokenTTL,
			RefreshTTL:          cfg.RefreshTokenTTL,
			VerifyEmailBaseURL:  cfg.VerifyEmailBaseURL,
			VerifyEmailTokenTTL: cfg.VerifyEmailTokenTTL,
		},
	)

	authSvc = authSvc.WithAudit(func(action string, fields map[string]string) {
		evt := logger.Logger.Info().
			Bool("audit", true).
			Str("action", action)
		for k, v := range fields {
			evt = evt.Str(k, v)
		}
		evt.Msg("audit")
	})

	projectSvc := project.NewService(projectRepo, categoryRepo, listCache, cfg.ProjectCacheTTL)
	contactSvc := contact.NewService(contactRepo)
	jobSvc := jobs.NewService(jobRepo)
	commentSvc := comment.NewService(commentRepo, projectRepo)

	// 7) handlers + middleware
	healthH := http_handlers.NewHealthHandler(sqlDB, pinger(redisCli))
	authH := http_handlers.NewAuthHandler(authSvc)
	usersH := http_handlers.NewUserHandler(authSvc)
	projectsH := http_handlers.NewProjectHandler(projectSvc)
	categoriesH := http_handlers.NewCategoryHandler(projectSvc)
	contactsH := http_handlers.NewContactHandler(contactSvc)
	jobsH := http_handlers.NewJobHandler(jobSvc)
	commentsH := http_handlers.NewCommentHandler(commentSvc)

	authMW := middleware.Auth(signer, userRepo, response.WriteError)
	optionalAuthMW := middleware.OptionalAuth(signer, userRepo)
	staffMW := middleware.RequireLevel(domain.LevelAdminOrStaff, response.WriteError)
	adminMW := middleware.RequireLevel(domain.LevelAdminOnly, response.WriteError)

	// rate limit (fail-open)
	var fwLimiter *redis.FixedWindowLimiter
	if redisCli != nil {
		fwLimiter = redis.NewFixedWindowLimiter(redisCli.(*redis.Client))
	}

	rl := func(key string, limit int, window time.Duration) func(http.Handler) http.Handler {
		if fwLimiter == nil {
			return nil
		}
		return middleware.RateLimit(
			fwLimiter,
			middleware.FixedWindowConfig{
				RouteKey: key,
				Limit:    limit,
				Window:   window,
			},
			response.WriteError,
		)
	}

	// 8) router
	mux, err := deps.NewRouter(router.Deps{
		Health:     healthH,
		Auth:       authH,
		Users:      usersH,
		Projects:   projectsH,
		Categories: categoriesH,
		Contacts:   contactsH,
		Jobs:       jobsH,
		Comments:   commentsH,

		AuthMW:         authMW,
		OptionalAuthMW: optionalAuthMW,
		StaffMW:        staffMW,
		AdminMW:        adminMW,

		RateLimitAuthMW:  rl("auth", 5, time.Minute),
		RateLimitFormsMW: rl("forms", 10, time.Minute),

		Global: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.CORS(cfg.CORSAllowedOrigins),
			middleware.SecurityHeaders(cfg.Env != "dev"),
			middleware.BodyLimit(0),
		},
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 9) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

// pinger strips the interface down for the health handler; a disabled redis
// must yield a nil Pinger, not a typed nil.
func pinger(c RedisClient) http_handlers.Pinger {
	if c == nil {
		return nil
	}
	return c
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(dsn string) (DBCloser, error) {
			return config.NewDB(dsn)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(url, exchange string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url, exchange)
		},
		NewRouter: router.New,
	}
}

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
