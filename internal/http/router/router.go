package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrsedghi/deliverino-sub000/internal/http/handlers"
	mw "github.com/mrsedghi/deliverino-sub000/internal/http/middleware"
	"github.com/mrsedghi/deliverino-sub000/internal/http/middleware/ratelimit"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	logger logx.Logger,
	limiter *ratelimit.Middleware,
	base *handlers.Handlers,
	cour *handlers.CourierHandler,
	ord *handlers.OrderHandler,
) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(10 * time.Second))
	r.Use(mw.Observability(logger))
	if limiter != nil {
		r.Use(limiter.Handler())
	}

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/couriers", func(r chi.Router) {
		r.Post("/", cour.Create)
		r.Get("/", cour.List)
		r.Get("/{id}", cour.GetByID)
		r.Patch("/{id}", cour.Update)
		r.Put("/{id}/location", cour.ReportLocation)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", ord.Create)
		r.Get("/{id}", ord.Get)
		r.Post("/{id}/accept", ord.Accept)
		r.Post("/{id}/reject", ord.Reject)
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
