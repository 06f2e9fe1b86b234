package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sharely/internal/config"
	"sharely/internal/domain"

	"github.com/rs/zerolog"
)

// HTTPServer exposes the user, item, request and booking subsystems over a
// JSON HTTP API. Caller identity arrives pre-resolved in the X-Sharer-User-Id
// header.
type HTTPServer struct {
	cfg      config.ServerConfig
	users    domain.UserService
	items    domain.ItemService
	requests domain.RequestService
	bookings domain.BookingService
	server   *http.Server
	log      zerolog.Logger
}

func NewHTTPServer(
	cfg config.ServerConfig,
	rateCfg config.RateLimitConfig,
	users domain.UserService,
	items domain.ItemService,
	requests domain.RequestService,
	bookings domain.BookingService,
	logger *zerolog.Logger,
) *HTTPServer {
	srv := &HTTPServer{
		cfg:      cfg,
		users:    users,
		items:    items,
		requests: requests,
		bookings: bookings,
	}
	if logger != nil {
		srv.log = logger.With().Str("component", "http").Logger()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/users", srv.handleUsers)
	mux.HandleFunc("/users/", srv.handleUserByID)
	mux.HandleFunc("/items", srv.handleItems)
	mux.HandleFunc("/items/", srv.handleItemSubpath)
	mux.HandleFunc("/requests", srv.handleRequests)
	mux.HandleFunc("/requests/", srv.handleRequestSubpath)
	mux.HandleFunc("/bookings", srv.handleBookings)
	mux.HandleFunc("/bookings/", srv.handleBookingSubpath)
	mux.HandleFunc("/healthz", srv.handleHealthz)
	mux.HandleFunc("/readyz", srv.handleReadyz)

	limiter := newRateLimiter(rateCfg)
	handler := requestLogging(srv.log, limiter.Wrap(mux))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return srv
}

// Handler returns the fully wrapped handler, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("http api listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleReadyz(w http.ResponseWriter, r *http.Request) {
	// All state is in-process, so readiness equals liveness here.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
