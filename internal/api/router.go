// Package api serves compound predictions over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/compound-cli/internal/model"
	"github.com/sells-group/compound-cli/internal/monitoring"
)

// Predictor is the prediction service behind the HTTP routes.
type Predictor interface {
	Predict(ctx context.Context, in model.KnownInput) (*model.Prediction, error)
	PredictByName(ctx context.Context, name string) (*model.Prediction, error)
	PredictUnknown(ctx context.Context, in model.UnknownInput) (*model.UnknownPrediction, error)
	Resolve(ctx context.Context, name string) (*model.Resolution, error)
	CheckFormula(ctx context.Context, formula string) (*model.FormulaCheck, error)
}

// Options configures the router. AllowedOrigins is copied when the router
// is built, so later changes to the caller's slice have no effect.
type Options struct {
	AllowedOrigins   []string
	AllowCredentials bool
	RequestTimeout   time.Duration // 0 disables
	Metrics          *monitoring.Metrics
}

// NewRouter builds the route tree for p.
func NewRouter(p Predictor, opts Options) http.Handler {
	h := &handler{svc: p}

	origins := make([]string, len(opts.AllowedOrigins))
	copy(origins, opts.AllowedOrigins)

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog)
	r.Use(instrument(opts.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{headerRequestID},
		AllowCredentials: opts.AllowCredentials,
		MaxAge:           300,
	}))

	r.Get("/", h.banner)
	r.Get("/health", h.health)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	r.Group(func(api chi.Router) {
		if opts.RequestTimeout > 0 {
			api.Use(chimw.Timeout(opts.RequestTimeout))
		}
		api.Post("/predict", h.predict)
		api.Post("/predict-unknown", h.predictUnknown)
		api.Get("/resolve", h.resolve)
		api.Get("/check-formula", h.checkFormula)
	})

	return r
}
