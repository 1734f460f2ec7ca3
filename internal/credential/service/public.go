package service

import (
	"context"
	"errors"

	"skillpass/internal/audit"
	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

// ResolvePublic resolves a public share token to the redacted public
// projection. Tokens of private credentials and unknown tokens both resolve
// to not_found, so probing a token reveals nothing about whether the
// credential exists. Each successful resolution records a view event;
// recording is best-effort and never fails the lookup.
func (s *Service) ResolvePublic(ctx context.Context, token string, origin audit.Origin) (*models.PublicView, error) {
	ctx, span := s.tracer.Start(ctx, "credential.ResolvePublic")
	var err error
	defer func() { span.End(err) }()

	credential, err := s.credentials.FindPublicByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			err = dErrors.New(dErrors.CodeNotFound, "no public credential matches this token")
			return nil, err
		}
		err = dErrors.Wrap(err, dErrors.CodeInternal, "could not look up public token")
		return nil, err
	}

	if s.recorder != nil {
		if recordErr := s.recorder.RecordView(ctx, credential.ID, origin); recordErr != nil {
			s.logger.Warn("failed to record credential view",
				"error", recordErr,
				"credential_id", credential.ID,
			)
		}
	}
	if s.metrics != nil {
		s.metrics.PublicViews.Inc()
	}

	view := models.NewPublicView(credential,
		s.displayName(ctx, credential.IssuerID),
		s.displayName(ctx, credential.LearnerID),
		s.now())
	return view, nil
}

// displayName resolves an account's public name. Lookup failures degrade to
// an empty name rather than failing the public page.
func (s *Service) displayName(ctx context.Context, userID id.UserID) string {
	account, err := s.accounts.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to resolve account name", "error", err, "user_id", userID)
		return ""
	}
	return account.DisplayName()
}
