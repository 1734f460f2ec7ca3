package service

import (
	"context"
	"errors"
	"strings"

	"skillpass/internal/credential/models"
	"skillpass/internal/platform/tracer"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

// PlatformLinkedIn is the share platform that additionally flips the
// credential's monotone shared_on_linkedin flag.
const PlatformLinkedIn = "linkedin"

// Share records that the owning learner shared the credential to an external
// platform. Only public credentials can be shared. The share event itself is
// best-effort; the LinkedIn flag update is synchronous because callers read
// it back on their dashboard.
func (s *Service) Share(ctx context.Context, actorID id.UserID, credentialID id.CredentialID, platform string) error {
	ctx, span := s.tracer.Start(ctx, "credential.Share",
		tracer.Attribute{Key: "credential_id", Value: credentialID.String()},
		tracer.Attribute{Key: "platform", Value: platform})
	var err error
	defer func() { span.End(err) }()

	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		err = dErrors.New(dErrors.CodeValidation, "share platform must not be empty")
		return err
	}

	credential, err := s.findCredential(ctx, credentialID)
	if err != nil {
		return err
	}
	if credential.LearnerID != actorID {
		err = dErrors.New(dErrors.CodeOwnership, "only the credential owner can share it")
		return err
	}
	if !credential.IsPublic {
		err = dErrors.New(dErrors.CodeInvalidState, "private credentials cannot be shared")
		return err
	}
	if status := credential.EffectiveStatus(s.now()); status == models.StatusRevoked || status == models.StatusExpired {
		err = dErrors.New(dErrors.CodeInvalidState, "credential is "+string(status)+" and cannot be shared")
		return err
	}

	if s.recorder != nil {
		if recordErr := s.recorder.RecordShare(ctx, credential.ID, actorID, platform); recordErr != nil {
			s.logger.Warn("failed to record credential share",
				"error", recordErr,
				"credential_id", credential.ID,
				"platform", platform,
			)
		}
	}
	if s.metrics != nil {
		s.metrics.Shares.WithLabelValues(platform).Inc()
	}

	if platform == PlatformLinkedIn {
		if markErr := s.credentials.MarkSharedOnLinkedIn(ctx, credential.ID); markErr != nil {
			err = dErrors.Wrap(markErr, dErrors.CodeInternal, "could not update share flag")
			return err
		}
	}

	s.logger.Info("credential shared",
		"credential_id", credential.ID,
		"platform", platform,
	)
	return nil
}

func (s *Service) findCredential(ctx context.Context, credentialID id.CredentialID) (*models.Credential, error) {
	credential, err := s.credentials.FindByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "credential not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not load credential")
	}
	return credential, nil
}
