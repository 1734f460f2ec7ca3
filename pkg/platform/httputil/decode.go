package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "skillpass/pkg/domain-errors"
)

// Normalizable request types canonicalize their fields (trim, case-fold)
// before validation.
type Normalizable interface {
	Normalize()
}

// Validatable request types reject structurally invalid input at the
// transport boundary, before the service sees it.
type Validatable interface {
	Validate() error
}

// DecodeAndPrepare decodes the JSON body into T, then runs Normalize and
// Validate when T implements them. On any failure it writes the error
// response itself and returns ok=false; the handler just returns.
//
//	req, ok := httputil.DecodeAndPrepare[IssueRequest](w, r, h.logger, ctx, requestID)
//	if !ok {
//		return
//	}
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}

	if n, ok := any(&req).(Normalizable); ok {
		n.Normalize()
	}
	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "invalid request",
				"error", err,
				"request_id", requestID,
			)
			var domainErr *dErrors.Error
			if !errors.As(err, &domainErr) {
				err = dErrors.New(dErrors.CodeValidation, err.Error())
			}
			WriteError(w, err)
			return nil, false
		}
	}

	return &req, true
}
