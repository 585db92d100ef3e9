package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/itemsapi/pkg/app"
	"github.com/ghuser/itemsapi/pkg/config"
	"github.com/ghuser/itemsapi/pkg/correlation"
	"github.com/ghuser/itemsapi/pkg/events"
	"github.com/ghuser/itemsapi/pkg/httpx"
	"github.com/ghuser/itemsapi/pkg/logger"
	"github.com/ghuser/itemsapi/pkg/telemetry"
	"github.com/ghuser/itemsapi/services/item/application/api"
	domainevents "github.com/ghuser/itemsapi/services/item/domain/events"
	"github.com/ghuser/itemsapi/services/item/infrastructure/persistence/memory"
)

const shutdownGrace = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		return err
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shCtx); err != nil {
			log.Error("telemetry shutdown", "error", err)
		}
	}()

	if err := telemetry.SetupSentry(cfg); err != nil {
		// Error tracking is best-effort; the API must come up without it.
		log.Warn("sentry init failed, continuing without error tracking", "error", err)
	}
	defer telemetry.SentryFlush()

	bus := events.NewEventBus(log)
	defer func() {
		if err := bus.Close(); err != nil {
			log.Error("event bus close", "error", err)
		}
	}()

	repo := memory.NewItemRepository()
	if err := seedItems(ctx, repo); err != nil {
		return fmt.Errorf("seed items: %w", err)
	}

	if err := startAuditSubscribers(ctx, bus, log); err != nil {
		return fmt.Errorf("start audit subscribers: %w", err)
	}

	a := &app.Application{Logger: log, EventBus: bus}

	metricsMW, err := telemetry.RequestMetrics(cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("request metrics: %w", err)
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		correlation.Middleware(),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
		logger.Middleware(log),
		metricsMW,
	)
	r.Get("/health", httpx.HealthHandler(cfg.ServiceName, cfg.ServiceVersion))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		api.ItemRoutes(r, a, repo)
	})

	srv := httpx.NewServer(cfg.Addr(), r)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server",
			"addr", cfg.Addr(),
			"service", cfg.ServiceName,
			"version", cfg.ServiceVersion,
			"environment", cfg.Environment,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", "grace", shutdownGrace)
	shCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// seedItems populates the volatile store with the two starter items so the API
// is explorable immediately after boot. Seeds go through the repository, so
// they consume ids 1 and 2 like any other create.
func seedItems(ctx context.Context, repo *memory.ItemRepository) error {
	seeds := []struct{ name, description string }{
		{"Item 1", "First item"},
		{"Item 2", "Second item"},
	}
	for _, s := range seeds {
		if _, err := repo.Create(ctx, s.name, s.description); err != nil {
			return err
		}
	}
	return nil
}

// startAuditSubscribers logs every item lifecycle event. This is the only
// in-process consumer; it exists so event publishing is exercised end to end
// and operators can correlate mutations with request logs.
func startAuditSubscribers(ctx context.Context, bus *events.EventBus, log logger.Logger) error {
	for _, topic := range []string{domainevents.TopicItemCreated, domainevents.TopicItemDeleted} {
		errCh, err := bus.Subscribe(ctx, topic, func(msgCtx context.Context, msg *message.Message) error {
			log.InfoContext(msgCtx, "item event",
				"topic", topic,
				"message_id", msg.UUID,
				"payload", string(msg.Payload),
			)
			return nil
		})
		if err != nil {
			return err
		}
		go func() {
			for err := range errCh {
				log.Error("audit subscriber", "topic", topic, "error", err)
			}
		}()
	}
	return nil
}
