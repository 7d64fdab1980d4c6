package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/benford-auth/internal/http/handlers"
	"github.com/pribylovaa/benford-auth/internal/http/middleware"
	"github.com/pribylovaa/benford-auth/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewAuthRouter собирает http.Handler auth-сервиса (POST /auth).
func NewAuthRouter(svc *service.Service, opts Options) http.Handler {
	root := newRouter(opts)

	h := handlers.New(svc)
	root.Post("/auth", h.Authenticate)

	return root
}

// NewJobsRouter собирает http.Handler jobs-сервиса (GET /jobs).
// auth — клиент проверки токена у auth-сервиса.
func NewJobsRouter(svc *service.Service, auth handlers.TokenChecker, opts Options) http.Handler {
	root := newRouter(opts)

	h := handlers.NewWithAuth(svc, auth)
	root.Get("/jobs", h.ListJobs)

	return root
}

// newRouter — chi-роутер с общей цепочкой middleware (внешний -> внутренний).
func newRouter(opts Options) chi.Router {
	root := chi.NewRouter()

	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	return root
}
