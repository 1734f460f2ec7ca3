package service

import (
	"context"
	"errors"

	"skillpass/internal/credential/models"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

// VerificationResult is the outcome of a code lookup. Valid reports whether
// the credential currently stands; FirstVerification is true only for the
// call that performed the issued → verified transition.
type VerificationResult struct {
	Credential        *models.Credential
	Valid             bool
	FirstVerification bool
}

// VerifyByCode resolves a credential by its verification code and, when the
// credential is in the issued state, transitions it to verified. The
// transition is a store-level compare-and-set, so concurrent verifications of
// the same code apply it exactly once; every later call is an idempotent
// re-verification. Anonymous callers are allowed, and visibility is not
// consulted: the code is the capability.
func (s *Service) VerifyByCode(ctx context.Context, code string) (*VerificationResult, error) {
	ctx, span := s.tracer.Start(ctx, "credential.VerifyByCode")
	var err error
	defer func() { span.End(err) }()

	credential, err := s.credentials.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.countVerification("not_found")
			err = dErrors.New(dErrors.CodeNotFound, "no credential matches this verification code")
			return nil, err
		}
		err = dErrors.Wrap(err, dErrors.CodeInternal, "could not look up verification code")
		return nil, err
	}

	now := s.now()
	result := &VerificationResult{Credential: credential}

	switch credential.EffectiveStatus(now) {
	case models.StatusIssued:
		applied, markErr := s.credentials.MarkVerified(ctx, credential.ID, now)
		if markErr != nil {
			err = dErrors.Wrap(markErr, dErrors.CodeInternal, "could not record verification")
			return nil, err
		}
		// applied=false means a concurrent verifier won the transition; the
		// credential is verified either way.
		credential.Status = models.StatusVerified
		if applied {
			credential.VerifiedAt = &now
			result.FirstVerification = true
		} else if refreshed, findErr := s.credentials.FindByID(ctx, credential.ID); findErr == nil {
			credential = refreshed
			result.Credential = refreshed
		}
		result.Valid = true
		s.countVerification("verified")

	case models.StatusVerified:
		result.Valid = true
		s.countVerification("already_verified")

	case models.StatusRevoked:
		s.countVerification("revoked")

	case models.StatusExpired:
		s.countVerification("expired")

	default:
		s.countVerification("pending")
	}

	return result, nil
}

func (s *Service) countVerification(outcome string) {
	if s.metrics != nil {
		s.metrics.Verifications.WithLabelValues(outcome).Inc()
	}
}
