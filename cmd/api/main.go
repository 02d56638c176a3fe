package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"docvision/docs"
	"docvision/internal/config"
	handlers "docvision/internal/http/handler"
	"docvision/internal/http/middleware"
	"docvision/internal/inference"
	"docvision/internal/logger"
	"docvision/internal/otel"
	"docvision/internal/prompt"
	"docvision/internal/service"
)

const shutdownTimeout = 15 * time.Second

// @title Document Vision API
// @version 1.0
// @description Document field extraction and face comparison backed by a multimodal model.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	backend, err := newBackend(ctx, cfg.Inference, log)
	if err != nil {
		log.Fatal("failed to initialize inference backend", zap.Error(err))
	}

	registry := prompt.NewRegistry(cfg.Templates.Version)
	metrics, err := service.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register service metrics", zap.Error(err))
	}
	extractSvc := service.NewExtractionService(backend, registry, metrics, cfg.Inference.DefaultMime, log)
	compareSvc := service.NewComparisonService(backend, metrics, cfg.Inference.DefaultMime, log)

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:               "docvision",
		BodyLimit:             cfg.BodyLimitBytes(),
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(promMiddleware.Handler())
	// JSON access log, one line per request
	app.Use(middleware.Logger(log))

	handlers.RegisterRoutes(app, registry, extractSvc, compareSvc, prometheus.DefaultGatherer)

	if cfg.SwaggerEnabled {
		// Swagger UI with dynamic host and scheme
		app.Get("/swagger/*", func(c *fiber.Ctx) error {
			scheme := c.Protocol()
			if proto := c.Get("X-Forwarded-Proto"); proto != "" {
				scheme = strings.Split(proto, ",")[0]
			}

			docs.SwaggerInfo.Host = c.Get("Host")
			docs.SwaggerInfo.Schemes = []string{scheme}

			return swagger.HandlerDefault(c)
		})
	}

	addr := ":" + cfg.Port
	go func() {
		log.Info("starting server",
			zap.String("addr", addr),
			zap.String("model", cfg.Inference.Model),
			zap.String("template_version", registry.DefaultVersion()),
		)
		if err := app.Listen(addr); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("shutting down server", zap.String("signal", sig.String()))
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}

	tracingCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(tracingCtx); err != nil {
		log.Error("tracer shutdown error", zap.Error(err))
	}
}

// newBackend builds the configured inference provider wrapped with metrics and tracing.
func newBackend(ctx context.Context, cfg config.InferenceConfig, log *zap.Logger) (inference.Backend, error) {
	var next inference.Backend
	switch cfg.Provider {
	case "", "gemini":
		g, err := inference.NewGemini(ctx, inference.GeminiConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		next = g
	default:
		return nil, fmt.Errorf("%w: %q", inference.ErrUnknownProvider, cfg.Provider)
	}
	return inference.NewInstrumented(next, prometheus.DefaultRegisterer, log)
}
