package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loadvoice-synqall/internal/http/handlers"
	obsmw "loadvoice-synqall/internal/http/middleware"
	"loadvoice-synqall/internal/http/middleware/ratelimit"
	"loadvoice-synqall/internal/logx"
)

// Deps groups everything the router mounts. Nil handlers leave their routes out.
type Deps struct {
	Logger    logx.Logger
	Base      *handlers.Handlers
	Loads     *handlers.LoadHandler
	RateCon   *handlers.RateConHandler
	Reviews   *handlers.ReviewHandler
	RateLimit *ratelimit.Middleware
	Metrics   http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obsmw.Observability(d.Logger))
	r.Use(middleware.Recoverer)
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}
	r.Use(middleware.Timeout(5 * time.Second))

	base := d.Base
	if base == nil {
		base = handlers.New(d.Logger)
	}
	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))

	metrics := d.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metrics)

	r.Route("/loads/{id}", func(r chi.Router) {
		if h := d.Loads; h != nil {
			r.Get("/", h.Get)
			r.Get("/workflow", h.Workflow)
			r.Get("/history", h.History)
			r.Post("/status", h.ChangeStatus)
			r.Post("/status/reverse", h.Reverse)
		}
		if h := d.RateCon; h != nil {
			r.Post("/rate-confirmation/events", h.Event)
			r.Get("/rate-confirmation/eligibility", h.Eligibility)
		}
	})

	if h := d.Reviews; h != nil {
		r.Post("/calls", h.Ingest)
		r.Post("/calls/{id}/review", h.Review)
		r.Get("/calls/{id}/review", h.GetReview)
		r.Get("/users/{id}/quality-preferences", h.Preferences)
		r.Put("/users/{id}/quality-preferences", h.SetPreferences)
	}

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
