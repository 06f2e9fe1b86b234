package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sharely/internal/api"
	"sharely/internal/config"
	"sharely/internal/events"
	"sharely/internal/logging"
	"sharely/internal/metrics"
	"sharely/internal/repository"
	"sharely/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	metrics.Register()

	eventBus := events.NewEventBus()
	subscribeEventHandlers(eventBus, &logger)

	userRepo := repository.NewMemoryUserRepository()
	itemRepo := repository.NewMemoryItemRepository()
	requestRepo := repository.NewMemoryRequestRepository()
	bookingRepo := repository.NewMemoryBookingRepository()

	userService := service.NewUserService(userRepo, &logger)
	itemService := service.NewItemService(itemRepo, userService, requestRepo, &logger)
	requestService := service.NewRequestService(requestRepo, userService, &logger)
	bookingService := service.NewBookingService(bookingRepo, userService, itemService, eventBus, &logger)

	httpServer := api.NewHTTPServer(
		cfg.Server, cfg.RateLimit,
		userService, itemService, requestService, bookingService,
		&logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startMetricsServer(ctx, cfg, &logger)

	return serve(ctx, httpServer, cfg, &logger)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

// subscribeEventHandlers wires the audit log and booking counters to the
// lifecycle events.
func subscribeEventHandlers(bus *events.EventBus, logger *zerolog.Logger) {
	audit := func(event *events.Event) error {
		var payload events.BookingEventPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		logger.Info().
			Str("event_type", event.Type).
			Int64("booking_id", payload.BookingID).
			Int64("item_id", payload.ItemID).
			Int64("booker_id", payload.BookerID).
			Str("status", payload.Status).
			Msg("booking event")
		return nil
	}

	bus.Subscribe(events.EventBookingCreated, audit)
	bus.Subscribe(events.EventBookingApproved, audit)
	bus.Subscribe(events.EventBookingRejected, audit)

	bus.Subscribe(events.EventBookingCreated, func(*events.Event) error {
		metrics.IncBookingCreated()
		return nil
	})
	bus.Subscribe(events.EventBookingApproved, func(*events.Event) error {
		metrics.IncBookingDecision("approved")
		return nil
	})
	bus.Subscribe(events.EventBookingRejected, func(*events.Event) error {
		metrics.IncBookingDecision("rejected")
		return nil
	})
}

func startMetricsServer(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("metrics listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics server error")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}

func serve(ctx context.Context, httpServer *api.HTTPServer, cfg *config.Config, logger *zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
