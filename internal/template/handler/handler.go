// Package handler exposes badge template management over HTTP. All routes
// are issuer-scoped.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skillpass/internal/platform/middleware"
	"skillpass/internal/template/models"
	"skillpass/internal/template/service"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/platform/httputil"
)

// Service defines the interface for template operations.
type Service interface {
	Create(ctx context.Context, issuerID id.UserID, input service.CreateInput) (*models.Template, error)
	Get(ctx context.Context, issuerID id.UserID, templateID id.TemplateID) (*models.Template, error)
	List(ctx context.Context, issuerID id.UserID, activeOnly bool) ([]*models.Template, error)
	Update(ctx context.Context, issuerID id.UserID, templateID id.TemplateID, input service.UpdateInput) (*models.Template, error)
	Deactivate(ctx context.Context, issuerID id.UserID, templateID id.TemplateID) (*models.Template, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts template routes on an authenticated router.
func (h *Handler) Register(r chi.Router) {
	issuerOnly := middleware.RequireRole(id.RoleIssuer, id.RoleAdmin)

	r.With(issuerOnly).Post("/badge-templates", h.HandleCreate)
	r.With(issuerOnly).Get("/badge-templates", h.HandleList)
	r.With(issuerOnly).Get("/badge-templates/{id}", h.HandleGet)
	r.With(issuerOnly).Put("/badge-templates/{id}", h.HandleUpdate)
	r.With(issuerOnly).Post("/badge-templates/{id}/deactivate", h.HandleDeactivate)
}

// HandleCreate registers a new badge template.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateTemplateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	template, err := h.service.Create(ctx, middleware.GetUserID(ctx), req.toInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "create template failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toTemplateResponse(template))
}

// HandleList returns the issuer's templates. ?active=true filters retired ones.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	activeOnly := r.URL.Query().Get("active") == "true"
	templates, err := h.service.List(ctx, middleware.GetUserID(ctx), activeOnly)
	if err != nil {
		h.logger.ErrorContext(ctx, "list templates failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toTemplateListResponse(templates))
}

// HandleGet returns a template to its owner.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	templateID, ok := h.templateID(w, r)
	if !ok {
		return
	}

	template, err := h.service.Get(ctx, middleware.GetUserID(ctx), templateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get template failed", "error", err, "request_id", requestID, "template_id", templateID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toTemplateResponse(template))
}

// HandleUpdate applies content edits to a template.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	templateID, ok := h.templateID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateTemplateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	template, err := h.service.Update(ctx, middleware.GetUserID(ctx), templateID, req.toInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "update template failed", "error", err, "request_id", requestID, "template_id", templateID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toTemplateResponse(template))
}

// HandleDeactivate retires a template from further issuance.
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	templateID, ok := h.templateID(w, r)
	if !ok {
		return
	}

	template, err := h.service.Deactivate(ctx, middleware.GetUserID(ctx), templateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "deactivate template failed", "error", err, "request_id", requestID, "template_id", templateID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toTemplateResponse(template))
}

func (h *Handler) templateID(w http.ResponseWriter, r *http.Request) (id.TemplateID, bool) {
	templateID, err := id.ParseTemplateID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid template id"))
		return id.TemplateID{}, false
	}
	return templateID, true
}
