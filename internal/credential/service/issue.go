package service

import (
	"context"
	"errors"
	"strings"
	"time"

	accountModels "skillpass/internal/account/models"
	"skillpass/internal/credential/models"
	"skillpass/internal/platform/tracer"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

// IssueInput carries the issuer-supplied content of an ad hoc credential.
type IssueInput struct {
	LearnerEmail  string
	Title         string
	Description   string
	Skills        []string
	SkillCategory string
	Tags          []string
	EvidenceURL   string

	CompletionDate *time.Time
	ExpiryDate     *time.Time
	IsPublic       bool
}

// TemplateIssueInput issues a credential from a badge template owned by the
// issuer. Content fields come from the template snapshot.
type TemplateIssueInput struct {
	TemplateID   id.TemplateID
	LearnerEmail string
	EvidenceURL  string

	CompletionDate *time.Time
	ExpiryDate     *time.Time
	IsPublic       bool
}

// Issue creates a credential for the learner identified by email. The new
// credential carries freshly allocated, globally unique verification
// identifiers and starts in the issued state.
func (s *Service) Issue(ctx context.Context, issuerID id.UserID, input IssueInput) (*models.Credential, error) {
	ctx, span := s.tracer.Start(ctx, "credential.Issue",
		tracer.Attribute{Key: "issuer_id", Value: issuerID.String()})
	var err error
	defer func() { span.End(err) }()

	if strings.TrimSpace(input.Title) == "" {
		err = dErrors.New(dErrors.CodeValidation, "title must not be empty")
		return nil, err
	}
	if err = validateDates(input.CompletionDate, input.ExpiryDate); err != nil {
		return nil, err
	}

	learner, err := s.resolveLearner(ctx, input.LearnerEmail)
	if err != nil {
		return nil, err
	}

	now := s.now()
	credential := &models.Credential{
		ID:             id.NewCredentialID(),
		LearnerID:      learner.ID,
		IssuerID:       issuerID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Skills:         append([]string(nil), input.Skills...),
		SkillCategory:  input.SkillCategory,
		Tags:           append([]string(nil), input.Tags...),
		EvidenceURL:    input.EvidenceURL,
		CompletionDate: input.CompletionDate,
		ExpiryDate:     input.ExpiryDate,
		IssuedAt:       now,
		UpdatedAt:      now,
		Status:         models.StatusIssued,
		IsPublic:       input.IsPublic,
	}

	if err = s.insertWithIdentifiers(ctx, credential); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CredentialsIssued.Inc()
	}
	s.logger.Info("credential issued",
		"credential_id", credential.ID,
		"issuer_id", issuerID,
		"learner_id", learner.ID,
	)
	return credential, nil
}

// IssueFromTemplate issues a credential whose content is snapshotted from a
// badge template. Later template edits never alter the issued credential.
func (s *Service) IssueFromTemplate(ctx context.Context, issuerID id.UserID, input TemplateIssueInput) (*models.Credential, error) {
	ctx, span := s.tracer.Start(ctx, "credential.IssueFromTemplate",
		tracer.Attribute{Key: "issuer_id", Value: issuerID.String()},
		tracer.Attribute{Key: "template_id", Value: input.TemplateID.String()})
	var err error
	defer func() { span.End(err) }()

	template, err := s.templates.FindByID(ctx, input.TemplateID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			err = dErrors.New(dErrors.CodeNotFound, "badge template not found")
			return nil, err
		}
		err = dErrors.Wrap(err, dErrors.CodeInternal, "could not load badge template")
		return nil, err
	}
	// Foreign templates read as missing so their existence is not disclosed.
	if !template.OwnedBy(issuerID) {
		err = dErrors.New(dErrors.CodeNotFound, "badge template not found")
		return nil, err
	}
	if !template.Active {
		err = dErrors.New(dErrors.CodeInvalidState, "badge template is inactive")
		return nil, err
	}
	if err = validateDates(input.CompletionDate, input.ExpiryDate); err != nil {
		return nil, err
	}

	learner, err := s.resolveLearner(ctx, input.LearnerEmail)
	if err != nil {
		return nil, err
	}

	now := s.now()
	credential := &models.Credential{
		ID:             id.NewCredentialID(),
		LearnerID:      learner.ID,
		IssuerID:       issuerID,
		TemplateID:     template.ID,
		Title:          template.Name,
		Description:    template.Description,
		Skills:         append([]string(nil), template.Skills...),
		SkillCategory:  string(template.BadgeType),
		Tags:           append([]string(nil), template.Tags...),
		EvidenceURL:    input.EvidenceURL,
		CompletionDate: input.CompletionDate,
		ExpiryDate:     input.ExpiryDate,
		IssuedAt:       now,
		UpdatedAt:      now,
		Status:         models.StatusIssued,
		IsPublic:       input.IsPublic,
	}

	if err = s.insertWithIdentifiers(ctx, credential); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CredentialsIssued.Inc()
	}
	s.logger.Info("credential issued from template",
		"credential_id", credential.ID,
		"template_id", template.ID,
		"issuer_id", issuerID,
		"learner_id", learner.ID,
	)
	return credential, nil
}

// insertWithIdentifiers runs the allocate-and-insert loop. The store's unique
// constraints are the collision oracle; only the colliding identifier is
// redrawn between attempts.
func (s *Service) insertWithIdentifiers(ctx context.Context, credential *models.Credential) error {
	code, token, err := s.allocator.Allocate(ctx, func(ctx context.Context, code, token string) error {
		credential.VerificationCode = code
		credential.PublicToken = token
		return s.credentials.Insert(ctx, credential)
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeIdentifierExhausted) {
			s.logger.Error("identifier allocation exhausted", "credential_id", credential.ID)
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not persist credential")
	}
	credential.VerificationCode = code
	credential.PublicToken = token
	return nil
}

func (s *Service) resolveLearner(ctx context.Context, email string) (*accountModels.Account, error) {
	account, err := s.accounts.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "learner account not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not resolve learner")
	}
	if account.Role != id.RoleLearner {
		return nil, dErrors.New(dErrors.CodeRoleMismatch, "credentials can only be issued to learners")
	}
	return account, nil
}

func validateDates(completion, expiry *time.Time) error {
	if completion != nil && expiry != nil && expiry.Before(*completion) {
		return dErrors.New(dErrors.CodeValidation, "expiry date must not precede completion date")
	}
	return nil
}
