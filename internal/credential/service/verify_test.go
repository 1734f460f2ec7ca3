package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

func (s *ServiceSuite) TestVerifyByCode_FirstVerification() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())

	s.mockStore.EXPECT().FindByCode(gomock.Any(), credential.VerificationCode).Return(credential, nil)
	s.mockStore.EXPECT().MarkVerified(gomock.Any(), credential.ID, testNow).Return(true, nil)

	result, err := s.service.VerifyByCode(context.Background(), credential.VerificationCode)

	s.Require().NoError(err)
	s.True(result.Valid)
	s.True(result.FirstVerification)
	s.Equal(models.StatusVerified, result.Credential.Status)
	s.Require().NotNil(result.Credential.VerifiedAt)
	s.Equal(testNow, *result.Credential.VerifiedAt)
}

func (s *ServiceSuite) TestVerifyByCode_ConcurrentLoserStillValid() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())
	earlier := testNow.Add(-time.Minute)
	stored := credential.Clone()
	stored.Status = models.StatusVerified
	stored.VerifiedAt = &earlier

	s.mockStore.EXPECT().FindByCode(gomock.Any(), credential.VerificationCode).Return(credential, nil)
	s.mockStore.EXPECT().MarkVerified(gomock.Any(), credential.ID, testNow).Return(false, nil)
	s.mockStore.EXPECT().FindByID(gomock.Any(), credential.ID).Return(stored, nil)

	result, err := s.service.VerifyByCode(context.Background(), credential.VerificationCode)

	s.Require().NoError(err)
	s.True(result.Valid)
	s.False(result.FirstVerification)
	// VerifiedAt reflects the winning verifier's timestamp, not ours.
	s.Require().NotNil(result.Credential.VerifiedAt)
	s.Equal(earlier, *result.Credential.VerifiedAt)
}

func (s *ServiceSuite) TestVerifyByCode_AlreadyVerifiedIsIdempotent() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())
	verifiedAt := testNow.Add(-time.Hour)
	credential.Status = models.StatusVerified
	credential.VerifiedAt = &verifiedAt

	s.mockStore.EXPECT().FindByCode(gomock.Any(), credential.VerificationCode).Return(credential, nil)

	result, err := s.service.VerifyByCode(context.Background(), credential.VerificationCode)

	s.Require().NoError(err)
	s.True(result.Valid)
	s.False(result.FirstVerification)
	s.Equal(verifiedAt, *result.Credential.VerifiedAt)
}

func (s *ServiceSuite) TestVerifyByCode_Revoked() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())
	credential.Status = models.StatusRevoked

	s.mockStore.EXPECT().FindByCode(gomock.Any(), credential.VerificationCode).Return(credential, nil)

	result, err := s.service.VerifyByCode(context.Background(), credential.VerificationCode)

	s.Require().NoError(err)
	s.False(result.Valid)
	s.False(result.FirstVerification)
}

func (s *ServiceSuite) TestVerifyByCode_ExpiredDerivedFromDate() {
	credential := s.issuedCredential(id.NewUserID(), id.NewUserID())
	expired := testNow.Add(-24 * time.Hour)
	credential.ExpiryDate = &expired

	// A lapsed credential must not transition to verified.
	s.mockStore.EXPECT().FindByCode(gomock.Any(), credential.VerificationCode).Return(credential, nil)

	result, err := s.service.VerifyByCode(context.Background(), credential.VerificationCode)

	s.Require().NoError(err)
	s.False(result.Valid)
}

func (s *ServiceSuite) TestVerifyByCode_UnknownCode() {
	s.mockStore.EXPECT().FindByCode(gomock.Any(), "NOPE0000").
		Return(nil, fmt.Errorf("credential not found: %w", sentinel.ErrNotFound))

	_, err := s.service.VerifyByCode(context.Background(), "NOPE0000")

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
