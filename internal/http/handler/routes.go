package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docvision/internal/prompt"
	"docvision/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Non-POST requests to /extract and /biometria fall through to Fiber's 405 handling.
func RegisterRoutes(
	app *fiber.App,
	registry *prompt.Registry,
	extractSvc service.ExtractionService,
	compareSvc service.ComparisonService,
	gatherer prometheus.Gatherer,
) {
	app.Post("/extract", ExtractDocument(extractSvc))
	app.Post("/biometria", CompareFaces(compareSvc))

	app.Get("/health", HealthCheck(registry))
	app.Get("/healthz", LivenessProbe())
	app.Get("/document-types/:version?", ListDocumentTypes(registry))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
