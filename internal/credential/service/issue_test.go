package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"skillpass/internal/credential/codes"
	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

func (s *ServiceSuite) TestIssue_Success() {
	learner := s.learner()
	issuerID := id.NewUserID()

	s.mockAccounts.EXPECT().FindByEmail(gomock.Any(), learner.Email).Return(learner, nil)

	var inserted *models.Credential
	s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Credential) error {
			inserted = c
			return nil
		})

	credential, err := s.service.Issue(context.Background(), issuerID, IssueInput{
		LearnerEmail: learner.Email,
		Title:        "Go Fundamentals",
		Skills:       []string{"go", "testing"},
		IsPublic:     true,
	})

	s.Require().NoError(err)
	s.Require().NotNil(inserted)
	s.Equal(models.StatusIssued, credential.Status)
	s.Equal(learner.ID, credential.LearnerID)
	s.Equal(issuerID, credential.IssuerID)
	s.Len(credential.VerificationCode, codes.CodeLength)
	s.NotEmpty(credential.PublicToken)
	s.Equal(testNow, credential.IssuedAt)
	s.True(credential.TemplateID.IsNil())
}

func (s *ServiceSuite) TestIssue_LearnerNotFound() {
	s.mockAccounts.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, fmt.Errorf("account not found: %w", sentinel.ErrNotFound))

	_, err := s.service.Issue(context.Background(), id.NewUserID(), IssueInput{
		LearnerEmail: "nobody@example.com",
		Title:        "Go Fundamentals",
	})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestIssue_RoleMismatch() {
	notALearner := s.issuer()
	s.mockAccounts.EXPECT().FindByEmail(gomock.Any(), notALearner.Email).Return(notALearner, nil)

	_, err := s.service.Issue(context.Background(), id.NewUserID(), IssueInput{
		LearnerEmail: notALearner.Email,
		Title:        "Go Fundamentals",
	})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeRoleMismatch))
}

func (s *ServiceSuite) TestIssue_EmptyTitle() {
	_, err := s.service.Issue(context.Background(), id.NewUserID(), IssueInput{
		LearnerEmail: "learner@example.com",
		Title:        "   ",
	})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestIssue_ExpiryBeforeCompletion() {
	completion := testNow
	expiry := testNow.Add(-24 * time.Hour)

	_, err := s.service.Issue(context.Background(), id.NewUserID(), IssueInput{
		LearnerEmail:   "learner@example.com",
		Title:          "Go Fundamentals",
		CompletionDate: &completion,
		ExpiryDate:     &expiry,
	})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestIssue_RedrawsCodeOnCollision() {
	learner := s.learner()
	s.mockAccounts.EXPECT().FindByEmail(gomock.Any(), learner.Email).Return(learner, nil)

	var attempted []string
	first := s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Credential) error {
			attempted = append(attempted, c.VerificationCode)
			return fmt.Errorf("insert credential: %w", sentinel.ErrDuplicateCode)
		})
	s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
		func(_ context.Context, c *models.Credential) error {
			attempted = append(attempted, c.VerificationCode)
			return nil
		})

	credential, err := s.service.Issue(context.Background(), id.NewUserID(), IssueInput{
		LearnerEmail: learner.Email,
		Title:        "Go Fundamentals",
	})

	s.Require().NoError(err)
	s.Require().Len(attempted, 2)
	s.NotEqual(attempted[0], attempted[1])
	s.Equal(attempted[1], credential.VerificationCode)
}

func (s *ServiceSuite) TestIssueFromTemplate_SnapshotsContent() {
	learner := s.learner()
	issuerID := id.NewUserID()
	template := s.template(issuerID)

	s.mockTemplates.EXPECT().FindByID(gomock.Any(), template.ID).Return(template, nil)
	s.mockAccounts.EXPECT().FindByEmail(gomock.Any(), learner.Email).Return(learner, nil)
	s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	credential, err := s.service.IssueFromTemplate(context.Background(), issuerID, TemplateIssueInput{
		TemplateID:   template.ID,
		LearnerEmail: learner.Email,
		IsPublic:     true,
	})

	s.Require().NoError(err)
	s.Equal(template.ID, credential.TemplateID)
	s.Equal(template.Name, credential.Title)
	s.Equal(template.Description, credential.Description)
	s.Equal(template.Skills, credential.Skills)
	s.Equal(string(template.BadgeType), credential.SkillCategory)
	s.Equal(template.Tags, credential.Tags)
}

func (s *ServiceSuite) TestIssueFromTemplate_ForeignTemplateReadsAsMissing() {
	template := s.template(id.NewUserID())
	s.mockTemplates.EXPECT().FindByID(gomock.Any(), template.ID).Return(template, nil)

	_, err := s.service.IssueFromTemplate(context.Background(), id.NewUserID(), TemplateIssueInput{
		TemplateID:   template.ID,
		LearnerEmail: "learner@example.com",
	})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestIssueFromTemplate_InactiveTemplate() {
	issuerID := id.NewUserID()
	template := s.template(issuerID)
	template.Active = false
	s.mockTemplates.EXPECT().FindByID(gomock.Any(), template.ID).Return(template, nil)

	_, err := s.service.IssueFromTemplate(context.Background(), issuerID, TemplateIssueInput{
		TemplateID:   template.ID,
		LearnerEmail: "learner@example.com",
	})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *ServiceSuite) TestIssue_IdentifierExhaustion() {
	learner := s.learner()
	s.mockAccounts.EXPECT().FindByEmail(gomock.Any(), learner.Email).Return(learner, nil)
	s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("insert credential: %w", sentinel.ErrDuplicateCode)).
		Times(5)

	_, err := s.service.Issue(context.Background(), id.NewUserID(), IssueInput{
		LearnerEmail: learner.Email,
		Title:        "Go Fundamentals",
	})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeIdentifierExhausted))
}
