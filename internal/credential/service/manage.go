package service

import (
	"context"
	"strings"
	"time"

	"skillpass/internal/credential/models"
	"skillpass/internal/platform/tracer"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
)

// UpdateInput carries the issuer-editable content of a credential. Nil
// pointer fields are left unchanged; identifier and ownership fields are
// never editable.
type UpdateInput struct {
	Title         *string
	Description   *string
	Skills        []string
	SkillCategory *string
	Tags          []string
	EvidenceURL   *string
	ExpiryDate    *time.Time
	IsPublic      *bool
}

// Get returns a credential to its learner, its issuer, or an admin.
func (s *Service) Get(ctx context.Context, requesterID id.UserID, role id.Role, credentialID id.CredentialID) (*models.Credential, error) {
	credential, err := s.findCredential(ctx, credentialID)
	if err != nil {
		return nil, err
	}
	if credential.LearnerID != requesterID && credential.IssuerID != requesterID && role != id.RoleAdmin {
		return nil, dErrors.New(dErrors.CodeOwnership, "credential belongs to another user")
	}
	return credential, nil
}

// Update applies content edits from the issuing issuer. Terminal credentials
// are frozen.
func (s *Service) Update(ctx context.Context, issuerID id.UserID, credentialID id.CredentialID, input UpdateInput) (*models.Credential, error) {
	ctx, span := s.tracer.Start(ctx, "credential.Update",
		tracer.Attribute{Key: "credential_id", Value: credentialID.String()})
	var err error
	defer func() { span.End(err) }()

	credential, err := s.ownedByIssuer(ctx, issuerID, credentialID)
	if err != nil {
		return nil, err
	}
	if credential.Status.Terminal() {
		err = dErrors.New(dErrors.CodeInvalidState, "credential is "+string(credential.Status)+" and cannot be edited")
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			err = dErrors.New(dErrors.CodeValidation, "title must not be empty")
			return nil, err
		}
		credential.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		credential.Description = *input.Description
	}
	if input.Skills != nil {
		credential.Skills = append([]string(nil), input.Skills...)
	}
	if input.SkillCategory != nil {
		credential.SkillCategory = *input.SkillCategory
	}
	if input.Tags != nil {
		credential.Tags = append([]string(nil), input.Tags...)
	}
	if input.EvidenceURL != nil {
		credential.EvidenceURL = *input.EvidenceURL
	}
	if input.ExpiryDate != nil {
		if validateErr := validateDates(credential.CompletionDate, input.ExpiryDate); validateErr != nil {
			err = validateErr
			return nil, err
		}
		credential.ExpiryDate = input.ExpiryDate
	}
	if input.IsPublic != nil {
		credential.IsPublic = *input.IsPublic
	}
	credential.UpdatedAt = s.now()

	if err = s.credentials.Update(ctx, credential); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "could not update credential")
		return nil, err
	}
	return credential, nil
}

// Revoke permanently invalidates an issued or verified credential.
func (s *Service) Revoke(ctx context.Context, issuerID id.UserID, credentialID id.CredentialID) (*models.Credential, error) {
	ctx, span := s.tracer.Start(ctx, "credential.Revoke",
		tracer.Attribute{Key: "credential_id", Value: credentialID.String()})
	var err error
	defer func() { span.End(err) }()

	credential, err := s.ownedByIssuer(ctx, issuerID, credentialID)
	if err != nil {
		return nil, err
	}
	if !credential.Status.CanTransition(models.StatusRevoked) {
		err = dErrors.New(dErrors.CodeInvalidState, "credential is "+string(credential.Status)+" and cannot be revoked")
		return nil, err
	}

	credential.Status = models.StatusRevoked
	credential.UpdatedAt = s.now()
	if err = s.credentials.Update(ctx, credential); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "could not revoke credential")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CredentialsRevoked.Inc()
	}
	s.logger.Info("credential revoked", "credential_id", credential.ID, "issuer_id", issuerID)
	return credential, nil
}

// Delete removes a credential entirely. Unlike revocation this leaves no
// tombstone, so it is reserved for issuance mistakes.
func (s *Service) Delete(ctx context.Context, issuerID id.UserID, credentialID id.CredentialID) error {
	ctx, span := s.tracer.Start(ctx, "credential.Delete",
		tracer.Attribute{Key: "credential_id", Value: credentialID.String()})
	var err error
	defer func() { span.End(err) }()

	if _, err = s.ownedByIssuer(ctx, issuerID, credentialID); err != nil {
		return err
	}
	if err = s.credentials.Delete(ctx, credentialID); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "could not delete credential")
		return err
	}
	s.logger.Info("credential deleted", "credential_id", credentialID, "issuer_id", issuerID)
	return nil
}

func (s *Service) ownedByIssuer(ctx context.Context, issuerID id.UserID, credentialID id.CredentialID) (*models.Credential, error) {
	credential, err := s.findCredential(ctx, credentialID)
	if err != nil {
		return nil, err
	}
	if credential.IssuerID != issuerID {
		return nil, dErrors.New(dErrors.CodeOwnership, "credential was issued by another issuer")
	}
	return credential, nil
}
