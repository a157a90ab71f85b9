package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kelechimadu/invoice-tally/internal/auth"
)

// Deps collects everything the HTTP surface needs.
type Deps struct {
	Handler     *Handler
	Verifier    auth.Verifier
	Pinger      Pinger
	Registry    *prometheus.Registry
	Logger      *slog.Logger
	MaxUploadMB int
}

// New builds the Fiber app with middleware and routes wired. The body limit
// leaves headroom above the per-file cap since one batch carries many files.
func New(deps Deps) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
		BodyLimit:    (deps.MaxUploadMB << 20) * 20,
	})

	app.Use(RequestID())
	app.Use(RequestLogger(deps.Logger))

	if deps.Registry != nil {
		prom, err := NewPrometheusMiddleware(deps.Registry)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	if deps.Pinger != nil {
		app.Get("/health", Health(deps.Pinger))
	}
	app.Get("/healthz", Healthz)

	api := app.Group("/api", RequireAuth(deps.Verifier))
	api.Post("/batches", deps.Handler.CreateBatch)
	api.Get("/batches", deps.Handler.ListBatches)
	api.Get("/batches/:id", deps.Handler.GetBatch)
	api.Delete("/batches/:id", deps.Handler.DeleteBatch)
	api.Get("/batches/:id/export", deps.Handler.ExportBatch)
	api.Patch("/invoices/:id", deps.Handler.UpdateInvoice)

	return app, nil
}
