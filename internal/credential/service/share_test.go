package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
)

func (s *ServiceSuite) TestShare_LinkedInSetsFlag() {
	learnerID := id.NewUserID()
	credential := s.issuedCredential(learnerID, id.NewUserID())

	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)
	s.mockRecorder.EXPECT().RecordShare(gomock.Any(), credential.ID, learnerID, "linkedin").Return(nil)
	s.mockStore.EXPECT().MarkSharedOnLinkedIn(gomock.Any(), credential.ID).Return(nil)

	err := s.service.Share(context.Background(), learnerID, credential.ID, "LinkedIn")

	s.Require().NoError(err)
}

func (s *ServiceSuite) TestShare_OtherPlatformSkipsFlag() {
	learnerID := id.NewUserID()
	credential := s.issuedCredential(learnerID, id.NewUserID())

	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)
	s.mockRecorder.EXPECT().RecordShare(gomock.Any(), credential.ID, learnerID, "twitter").Return(nil)
	// No MarkSharedOnLinkedIn expectation: only linkedin shares touch the flag.

	err := s.service.Share(context.Background(), learnerID, credential.ID, "twitter")

	s.Require().NoError(err)
}

func (s *ServiceSuite) TestShare_NotOwner() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	err := s.service.Share(context.Background(), id.NewUserID(), credential.ID, "linkedin")

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeOwnership))
}

func (s *ServiceSuite) TestShare_PrivateCredential() {
	learnerID := id.NewUserID()
	credential := s.issuedCredential(learnerID, id.NewUserID())
	credential.IsPublic = false
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	err := s.service.Share(context.Background(), learnerID, credential.ID, "linkedin")

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *ServiceSuite) TestShare_RevokedCredential() {
	learnerID := id.NewUserID()
	credential := s.issuedCredential(learnerID, id.NewUserID())
	credential.Status = models.StatusRevoked
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)

	err := s.service.Share(context.Background(), learnerID, credential.ID, "linkedin")

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *ServiceSuite) TestShare_RecorderFailureStillShares() {
	learnerID := id.NewUserID()
	credential := s.issuedCredential(learnerID, id.NewUserID())

	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(credential, nil)
	s.mockRecorder.EXPECT().RecordShare(gomock.Any(), credential.ID, learnerID, "linkedin").
		Return(errors.New("sink unavailable"))
	s.mockStore.EXPECT().MarkSharedOnLinkedIn(gomock.Any(), credential.ID).Return(nil)

	err := s.service.Share(context.Background(), learnerID, credential.ID, "linkedin")

	s.Require().NoError(err)
}

func (s *ServiceSuite) TestShare_EmptyPlatform() {
	err := s.service.Share(context.Background(), id.NewUserID(), id.NewCredentialID(), "  ")

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}
