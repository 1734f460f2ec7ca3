package service

import (
	"context"

	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
)

// ListByLearner returns a learner's credentials, newest first. With
// publicOnly set only publicly visible credentials are returned, which is
// what profile pages request on behalf of third parties.
func (s *Service) ListByLearner(ctx context.Context, learnerID id.UserID, publicOnly bool, offset, limit int) ([]*models.Credential, error) {
	out, err := s.credentials.ListByLearner(ctx, learnerID, publicOnly, offset, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not list learner credentials")
	}
	return out, nil
}

// ListByIssuer returns the credentials an issuer has issued, newest first.
func (s *Service) ListByIssuer(ctx context.Context, issuerID id.UserID, offset, limit int) ([]*models.Credential, error) {
	out, err := s.credentials.ListByIssuer(ctx, issuerID, offset, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not list issued credentials")
	}
	return out, nil
}
