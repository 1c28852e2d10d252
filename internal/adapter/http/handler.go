package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"collabhub/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the lifecycle usecase, the token authenticator and a
// logger. Routes are registered on a chi.Router; everything under /api/v1
// requires a bearer token.
type Handler struct {
	svc    port.LifecycleUseCase
	auth   *Authenticator
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. requestTimeout
// bounds each request; zero disables the limit.
func NewHandler(svc port.LifecycleUseCase, auth *Authenticator, logger *slog.Logger, requestTimeout time.Duration) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Post("/campaigns/{campaignID}/applications", h.handleSubmitApplication)
		r.Get("/campaigns/{campaignID}/funnel", h.handleBrandFunnel)
		r.Post("/applications/{applicationID}/decision", h.handleDecideApplication)

		r.Get("/collaborations/{collaborationID}", h.handleGetCollaboration)
		r.Post("/collaborations/{collaborationID}/deliverables/{deliverableID}/submission", h.handleSubmitDeliverable)
		r.Post("/collaborations/{collaborationID}/deliverables/{deliverableID}/review", h.handleReviewDeliverable)
		r.Post("/collaborations/{collaborationID}/cancel", h.handleCancelCollaboration)
		r.Post("/collaborations/{collaborationID}/escrow/release", h.handleReleaseEscrow)
		r.Post("/collaborations/{collaborationID}/escrow/dispute", h.handleFlagDispute)

		r.Get("/creators/{creatorID}/dashboard", h.handleCreatorDashboard)
		r.Get("/escrow/history", h.handleEscrowHistory)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.logger.ErrorContext(r.Context(), "handler panic",
					slog.Any("panic", rec),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{Code: "internal", Message: "internal error"}})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
