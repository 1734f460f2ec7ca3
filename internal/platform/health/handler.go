// Package health exposes liveness and readiness probes for the service.
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"skillpass/pkg/platform/httputil"
)

// Version is set at build time via ldflags.
var Version = "dev"

const checkTimeout = 2 * time.Second

// CheckFunc probes one dependency. Nil means healthy.
type CheckFunc func(ctx context.Context) error

// Handler serves the probe endpoints. Checks are registered by name during
// wiring; the readiness probe runs them all under a shared timeout.
type Handler struct {
	startTime   time.Time
	environment string

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

func New(environment string) *Handler {
	return &Handler{
		startTime:   time.Now(),
		environment: environment,
		checks:      make(map[string]CheckFunc),
	}
}

// RegisterCheck adds a named dependency probe to the readiness endpoint.
func (h *Handler) RegisterCheck(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Register mounts the probe routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

// HandleLiveness answers 200 whenever the process is up.
func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// ReadinessResponse reports per-dependency probe outcomes.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleReadiness runs every registered check and answers 503 if any fail.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	checks := make(map[string]CheckFunc, len(h.checks))
	for name, check := range h.checks {
		checks[name] = check
	}
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	response := ReadinessResponse{Status: "ready", Checks: make(map[string]string)}
	ready := true
	for name, check := range checks {
		if err := check(ctx); err != nil {
			response.Checks[name] = "down: " + err.Error()
			ready = false
			continue
		}
		response.Checks[name] = "up"
	}

	if !ready {
		response.Status = "not_ready"
		httputil.WriteJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, response)
}

// StatusResponse carries version and uptime for operators.
type StatusResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

// HandleStatus reports general service status.
func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		Status:        "healthy",
		Version:       Version,
		Environment:   h.environment,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}
