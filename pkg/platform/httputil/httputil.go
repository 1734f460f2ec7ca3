// Package httputil carries the JSON response helpers shared by every
// handler: one envelope for successes, one for coded errors.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "skillpass/pkg/domain-errors"
)

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already out; an encode failure cannot change the status.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError maps a domain error onto the HTTP error envelope. Anything
// that is not a coded domain error answers as a bare internal_error so
// wrapped causes never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if !errors.As(err, &domainErr) {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error": string(dErrors.CodeInternal),
		})
		return
	}

	body := map[string]string{"error": string(domainErr.Code)}
	if domainErr.Message != "" {
		body["error_description"] = domainErr.Message
	}
	WriteJSON(w, statusOf(domainErr.Code), body)
}

func statusOf(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput, dErrors.CodeRoleMismatch:
		return http.StatusBadRequest
	case dErrors.CodeConflict, dErrors.CodeInvalidState:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden, dErrors.CodeOwnership:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
