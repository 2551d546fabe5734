//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/carrylink/carrylink/internal/auth"
	"github.com/carrylink/carrylink/internal/lifecycle"
)

type Lifecycle interface {
	CreateRequest(ctx context.Context, caller lifecycle.Identity, params lifecycle.CreateParams) (*lifecycle.Request, error)
	ListMyRequests(ctx context.Context, caller lifecycle.Identity, statusFilter lifecycle.Status) ([]lifecycle.Request, error)
	ListCandidates(ctx context.Context, caller lifecycle.Identity, requestID int64) ([]lifecycle.CarrierInterest, error)
	ConfirmMatching(ctx context.Context, caller lifecycle.Identity, requestID int64, carrierID uuid.UUID, carrierNickname string) error
	CancelMatching(ctx context.Context, caller lifecycle.Identity, requestID int64) error
	DeleteRequest(ctx context.Context, caller lifecycle.Identity, requestID int64) error
	ExpressInterest(ctx context.Context, caller lifecycle.Identity, requestID int64) error
	ListAcceptedByCarrier(ctx context.Context, caller lifecycle.Identity) ([]lifecycle.Request, error)
	ListInterestedByCarrier(ctx context.Context, caller lifecycle.Identity) ([]lifecycle.Request, error)
}

type Auth interface {
	Signup(ctx context.Context, params auth.SignupParams) (lifecycle.Identity, error)
	Login(ctx context.Context, email, password string) (string, lifecycle.Identity, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (lifecycle.Identity, error)
}

type Server struct {
	lifecycle Lifecycle
	auth      Auth
	logger    *zap.Logger
	server    *http.Server
}

func New(lc Lifecycle, authSvc Auth, logger *zap.Logger) *Server {
	return &Server{
		lifecycle: lc,
		auth:      authSvc,
		logger:    logger,
	}
}

func (s *Server) Run(port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "Page not found")
	})
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)

	authed.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)

	authed.HandleFunc("/requests", s.handleCreateRequest).Methods(http.MethodPost)
	authed.HandleFunc("/requests", s.handleListMyRequests).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{id}/candidates", s.handleListCandidates).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{id}/confirm", s.handleConfirmMatching).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id}/cancel", s.handleCancelMatching).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id}/interest", s.handleExpressInterest).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id}", s.handleDeleteRequest).Methods(http.MethodDelete)

	authed.HandleFunc("/carrier/accepted", s.handleListAccepted).Methods(http.MethodGet)
	authed.HandleFunc("/carrier/interested", s.handleListInterested).Methods(http.MethodGet)

	return r
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps error kinds from the lifecycle and auth
// services to HTTP status codes. Callers only ever see the message.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrUnauthenticated):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, lifecycle.ErrValidationRejected):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lifecycle.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, lifecycle.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, lifecycle.ErrStoreUnavailable):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
