// Package api exposes the HTTP surface: public chef listings and booking
// submissions, the authenticated self-service endpoints and the admin CRUD.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chefbook/internal/config"
	"chefbook/internal/domain"
	"chefbook/internal/notify"
	"chefbook/internal/store"

	"github.com/rs/zerolog"
)

type HTTPServer struct {
	cfg      *config.Config
	chefs    *store.ChefStore
	events   *store.EventStore
	bookings domain.UserBookingService
	profiles domain.ProfileService
	db       domain.Store
	sessions domain.SessionRepository
	notifier *notify.Notifier
	limiter  *rateLimiter
	logger   *zerolog.Logger
	server   *http.Server
}

func NewHTTPServer(
	cfg *config.Config,
	chefs *store.ChefStore,
	events *store.EventStore,
	bookings domain.UserBookingService,
	profiles domain.ProfileService,
	db domain.Store,
	sessions domain.SessionRepository,
	notifier *notify.Notifier,
	logger *zerolog.Logger,
) *HTTPServer {
	srv := &HTTPServer{
		cfg:      cfg,
		chefs:    chefs,
		events:   events,
		bookings: bookings,
		profiles: profiles,
		db:       db,
		sessions: sessions,
		notifier: notifier,
		limiter:  newRateLimiter(&cfg.API),
		logger:   logger,
	}

	mux := http.NewServeMux()

	// Публичные маршруты
	mux.HandleFunc("/api/v1/chefs", srv.handleChefs)
	mux.HandleFunc("/api/v1/bookings", srv.handleBookings)
	mux.HandleFunc("/api/v1/specialties", srv.handleSpecialties)
	mux.HandleFunc("/api/v1/auth/register", srv.handleRegister)
	mux.HandleFunc("/api/v1/auth/login", srv.handleLogin)
	mux.HandleFunc("/api/v1/auth/logout", srv.withAuth(srv.handleLogout))

	// Личный кабинет
	mux.HandleFunc("/api/v1/me/bookings", srv.withAuth(srv.handleMyBookings))
	mux.HandleFunc("/api/v1/me/bookings/", srv.withAuth(srv.handleMyBooking))
	mux.HandleFunc("/api/v1/me/profile", srv.withAuth(srv.handleMyProfile))

	// Админка
	mux.HandleFunc("/api/v1/admin/chefs", srv.withAdmin(srv.handleAdminChefs))
	mux.HandleFunc("/api/v1/admin/chefs/", srv.withAdmin(srv.handleAdminChef))
	mux.HandleFunc("/api/v1/admin/events", srv.withAdmin(srv.handleAdminEvents))
	mux.HandleFunc("/api/v1/admin/events/", srv.withAdmin(srv.handleAdminEvent))
	mux.HandleFunc("/api/v1/admin/notices", srv.withAdmin(srv.handleAdminNotices))

	mux.HandleFunc("/api/v1/health", srv.handleHealth)

	handler := srv.loggingMiddleware(srv.rateLimitMiddleware(mux))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.API.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return srv
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
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

// Handler returns the full middleware-wrapped handler, used by tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleSpecialties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"specialties": s.cfg.Specialties})
}

func (s *HTTPServer) handleAdminNotices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notices": s.notifier.Recent()})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
