package service

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
)

func (s *ServiceSuite) TestGet_OwnerAndAdminAllowed() {
	learnerID, issuerID := id.NewUserID(), id.NewUserID()
	credential := s.issuedCredential(learnerID, issuerID)

	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil).Times(3)

	_, err := s.service.Get(context.Background(), learnerID, id.RoleLearner, credential.ID)
	s.NoError(err)
	_, err = s.service.Get(context.Background(), issuerID, id.RoleIssuer, credential.ID)
	s.NoError(err)
	_, err = s.service.Get(context.Background(), id.NewUserID(), id.RoleAdmin, credential.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestGet_StrangerDenied() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	_, err := s.service.Get(context.Background(), id.NewUserID(), id.RoleLearner, credential.ID)

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeOwnership))
}

func (s *ServiceSuite) TestUpdate_AppliesEdits() {
	issuerID := id.NewUserID()
	credential := s.issuedCredential(id.NewUserID(), issuerID)

	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)
	s.mockStore.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Credential) error {
			s.Equal("Advanced Go", c.Title)
			s.Equal(testNow, c.UpdatedAt)
			return nil
		})

	title := "Advanced Go"
	isPublic := false
	updated, err := s.service.Update(context.Background(), issuerID, credential.ID, UpdateInput{
		Title:    &title,
		IsPublic: &isPublic,
	})

	s.Require().NoError(err)
	s.Equal("Advanced Go", updated.Title)
	s.False(updated.IsPublic)
}

func (s *ServiceSuite) TestUpdate_ForeignIssuerDenied() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	title := "Hijacked"
	_, err := s.service.Update(context.Background(), id.NewUserID(), credential.ID, UpdateInput{Title: &title})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeOwnership))
}

func (s *ServiceSuite) TestUpdate_TerminalCredentialFrozen() {
	issuerID := id.NewUserID()
	credential := s.issuedCredential(id.NewUserID(), issuerID)
	credential.Status = models.StatusRevoked
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	title := "Too late"
	_, err := s.service.Update(context.Background(), issuerID, credential.ID, UpdateInput{Title: &title})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *ServiceSuite) TestUpdate_ExpiryBeforeCompletionRejected() {
	issuerID := id.NewUserID()
	credential := s.issuedCredential(id.NewUserID(), issuerID)
	completion := testNow
	credential.CompletionDate = &completion
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	expiry := testNow.Add(-time.Hour)
	_, err := s.service.Update(context.Background(), issuerID, credential.ID, UpdateInput{ExpiryDate: &expiry})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestRevoke_IssuedCredential() {
	issuerID := id.NewUserID()
	credential := s.issuedCredential(id.NewUserID(), issuerID)

	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)
	s.mockStore.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Credential) error {
			s.Equal(models.StatusRevoked, c.Status)
			return nil
		})

	revoked, err := s.service.Revoke(context.Background(), issuerID, credential.ID)

	s.Require().NoError(err)
	s.Equal(models.StatusRevoked, revoked.Status)
}

func (s *ServiceSuite) TestRevoke_AlreadyRevoked() {
	issuerID := id.NewUserID()
	credential := s.issuedCredential(id.NewUserID(), issuerID)
	credential.Status = models.StatusRevoked
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	_, err := s.service.Revoke(context.Background(), issuerID, credential.ID)

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *ServiceSuite) TestDelete_OwnershipChecked() {
	issuerID := id.NewUserID()
	credential := s.issuedCredential(id.NewUserID(), issuerID)

	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)
	s.mockStore.EXPECT().Delete(gomock.Any(), credential.ID).Return(nil)

	s.NoError(s.service.Delete(context.Background(), issuerID, credential.ID))
}

func (s *ServiceSuite) TestDelete_ForeignIssuerDenied() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	err := s.service.Delete(context.Background(), id.NewUserID(), credential.ID)

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeOwnership))
}
