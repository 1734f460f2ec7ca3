// Package handler exposes the credential workflow over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"skillpass/internal/audit"
	"skillpass/internal/credential/models"
	"skillpass/internal/credential/service"
	"skillpass/internal/platform/middleware"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/platform/httputil"
)

// Service defines the interface for credential operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Issue(ctx context.Context, issuerID id.UserID, input service.IssueInput) (*models.Credential, error)
	IssueFromTemplate(ctx context.Context, issuerID id.UserID, input service.TemplateIssueInput) (*models.Credential, error)
	VerifyByCode(ctx context.Context, code string) (*service.VerificationResult, error)
	ResolvePublic(ctx context.Context, token string, origin audit.Origin) (*models.PublicView, error)
	Share(ctx context.Context, actorID id.UserID, credentialID id.CredentialID, platform string) error
	Get(ctx context.Context, requesterID id.UserID, role id.Role, credentialID id.CredentialID) (*models.Credential, error)
	Update(ctx context.Context, issuerID id.UserID, credentialID id.CredentialID, input service.UpdateInput) (*models.Credential, error)
	Revoke(ctx context.Context, issuerID id.UserID, credentialID id.CredentialID) (*models.Credential, error)
	Delete(ctx context.Context, issuerID id.UserID, credentialID id.CredentialID) error
	ListByLearner(ctx context.Context, learnerID id.UserID, publicOnly bool, offset, limit int) ([]*models.Credential, error)
	ListByIssuer(ctx context.Context, issuerID id.UserID, offset, limit int) ([]*models.Credential, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts authenticated credential routes. The router is expected to
// already carry bearer auth; issuer-only routes add their own role guard.
func (h *Handler) Register(r chi.Router) {
	issuerOnly := middleware.RequireRole(id.RoleIssuer, id.RoleAdmin)

	r.With(issuerOnly).Post("/credentials", h.HandleIssue)
	r.With(issuerOnly).Post("/credentials/issue", h.HandleIssueFromTemplate)
	r.Get("/credentials", h.HandleList)
	r.Get("/credentials/{id}", h.HandleGet)
	r.With(issuerOnly).Put("/credentials/{id}", h.HandleUpdate)
	r.With(issuerOnly).Delete("/credentials/{id}", h.HandleDelete)
	r.With(issuerOnly).Post("/credentials/{id}/revoke", h.HandleRevoke)
	r.Post("/credentials/{id}/share", h.HandleShare)
}

// RegisterPublic mounts the anonymous verification and public view routes.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/verify", h.HandleVerify)
	r.Get("/verify/{code}", h.HandleVerifyByPath)
	r.Get("/public/credentials/{token}", h.HandlePublicView)
}

// HandleIssue creates a credential with issuer-supplied content.
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[IssueRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	credential, err := h.service.Issue(ctx, middleware.GetUserID(ctx), req.toInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "issue credential failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toCredentialResponse(credential, time.Now()))
}

// HandleIssueFromTemplate creates a credential snapshotted from a badge template.
func (h *Handler) HandleIssueFromTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[TemplateIssueRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	credential, err := h.service.IssueFromTemplate(ctx, middleware.GetUserID(ctx), req.toInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "issue from template failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toCredentialResponse(credential, time.Now()))
}

// HandleVerify resolves a verification code posted in the request body.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	h.verify(w, r, req.Code)
}

// HandleVerifyByPath resolves a verification code from the URL, the form
// printed on certificates.
func (h *Handler) HandleVerifyByPath(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, chi.URLParam(r, "code"))
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request, code string) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	result, err := h.service.VerifyByCode(ctx, code)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "verification failed", "error", err, "request_id", requestID)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &VerifyResponse{
		Valid:             result.Valid,
		FirstVerification: result.FirstVerification,
		Credential:        toCredentialResponse(result.Credential, time.Now()),
	})
}

// HandlePublicView resolves a public share token to the redacted projection.
func (h *Handler) HandlePublicView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	origin := audit.ParseOrigin(clientIP(r), r.UserAgent())
	view, err := h.service.ResolvePublic(ctx, chi.URLParam(r, "token"), origin)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "public resolution failed", "error", err, "request_id", requestID)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, view)
}

// HandleShare records a share of the caller's credential.
func (h *Handler) HandleShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	credentialID, ok := h.credentialID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ShareRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Share(ctx, middleware.GetUserID(ctx), credentialID, req.Platform); err != nil {
		h.logger.ErrorContext(ctx, "share credential failed", "error", err, "request_id", requestID, "credential_id", credentialID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "shared", "platform": req.Platform})
}

// HandleGet returns a credential to its learner, issuer, or an admin.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	credentialID, ok := h.credentialID(w, r)
	if !ok {
		return
	}

	credential, err := h.service.Get(ctx, middleware.GetUserID(ctx), middleware.GetRole(ctx), credentialID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get credential failed", "error", err, "request_id", requestID, "credential_id", credentialID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCredentialResponse(credential, time.Now()))
}

// HandleUpdate applies issuer edits to a credential.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	credentialID, ok := h.credentialID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	credential, err := h.service.Update(ctx, middleware.GetUserID(ctx), credentialID, req.toInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "update credential failed", "error", err, "request_id", requestID, "credential_id", credentialID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCredentialResponse(credential, time.Now()))
}

// HandleRevoke permanently invalidates a credential.
func (h *Handler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	credentialID, ok := h.credentialID(w, r)
	if !ok {
		return
	}

	credential, err := h.service.Revoke(ctx, middleware.GetUserID(ctx), credentialID)
	if err != nil {
		h.logger.ErrorContext(ctx, "revoke credential failed", "error", err, "request_id", requestID, "credential_id", credentialID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCredentialResponse(credential, time.Now()))
}

// HandleDelete removes a credential entirely.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	credentialID, ok := h.credentialID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, middleware.GetUserID(ctx), credentialID); err != nil {
		h.logger.ErrorContext(ctx, "delete credential failed", "error", err, "request_id", requestID, "credential_id", credentialID)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleList returns the caller's credentials: learners see credentials
// issued to them, issuers see credentials they issued.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	offset, limit := pagination(r)

	var (
		credentials []*models.Credential
		err         error
	)
	switch middleware.GetRole(ctx) {
	case id.RoleIssuer:
		credentials, err = h.service.ListByIssuer(ctx, middleware.GetUserID(ctx), offset, limit)
	default:
		publicOnly := r.URL.Query().Get("public_only") == "true"
		credentials, err = h.service.ListByLearner(ctx, middleware.GetUserID(ctx), publicOnly, offset, limit)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list credentials failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCredentialListResponse(credentials, time.Now()))
}

func (h *Handler) credentialID(w http.ResponseWriter, r *http.Request) (id.CredentialID, bool) {
	credentialID, err := id.ParseCredentialID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid credential id"))
		return id.CredentialID{}, false
	}
	return credentialID, true
}

func pagination(r *http.Request) (offset, limit int) {
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return offset, limit
}

// clientIP prefers the X-Forwarded-For chain set by the edge proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
