package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skillpass/internal/platform/middleware"
	id "skillpass/pkg/domain"
	"skillpass/pkg/platform/httputil"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts dashboard routes on an authenticated router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard/learner", h.HandleLearner)
	r.With(middleware.RequireRole(id.RoleIssuer, id.RoleAdmin)).Get("/dashboard/issuer", h.HandleIssuer)
}

// HandleLearner returns the caller's wallet summary.
func (h *Handler) HandleLearner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.LearnerStats(ctx, middleware.GetUserID(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "learner dashboard failed", "error", err,
			"request_id", middleware.GetRequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

// HandleIssuer returns the caller's issuance summary.
func (h *Handler) HandleIssuer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.IssuerStats(ctx, middleware.GetUserID(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "issuer dashboard failed", "error", err,
			"request_id", middleware.GetRequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}
