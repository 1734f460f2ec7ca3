package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"skillpass/internal/audit"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

func (s *ServiceSuite) TestResolvePublic_RedactedView() {
	learner := s.learner()
	issuer := s.issuer()
	credential := s.issuedCredential(learner.ID, issuer.ID)
	origin := audit.Origin{IP: "203.0.113.9", Browser: "firefox"}

	s.mockStore.EXPECT().FindPublicByToken(gomock.Any(), credential.PublicToken).Return(credential, nil)
	s.mockRecorder.EXPECT().RecordView(gomock.Any(), credential.ID, origin).Return(nil)
	s.mockAccounts.EXPECT().FindByID(gomock.Any(), issuer.ID).Return(issuer, nil)
	s.mockAccounts.EXPECT().FindByID(gomock.Any(), learner.ID).Return(learner, nil)

	view, err := s.service.ResolvePublic(context.Background(), credential.PublicToken, origin)

	s.Require().NoError(err)
	s.Equal(credential.Title, view.Title)
	s.Equal("Tech Academy", view.IssuerName)
	s.Equal("Jordan Rivera", view.LearnerName)
	s.Equal("issued", view.Status)
}

func (s *ServiceSuite) TestResolvePublic_RecorderFailureDoesNotFailLookup() {
	learner := s.learner()
	issuer := s.issuer()
	credential := s.issuedCredential(learner.ID, issuer.ID)

	s.mockStore.EXPECT().FindPublicByToken(gomock.Any(), credential.PublicToken).Return(credential, nil)
	s.mockRecorder.EXPECT().RecordView(gomock.Any(), credential.ID, gomock.Any()).
		Return(errors.New("sink unavailable"))
	s.mockAccounts.EXPECT().FindByID(gomock.Any(), issuer.ID).Return(issuer, nil)
	s.mockAccounts.EXPECT().FindByID(gomock.Any(), learner.ID).Return(learner, nil)

	view, err := s.service.ResolvePublic(context.Background(), credential.PublicToken, audit.Origin{})

	s.Require().NoError(err)
	s.NotNil(view)
}

func (s *ServiceSuite) TestResolvePublic_NotFound() {
	s.mockStore.EXPECT().FindPublicByToken(gomock.Any(), "unknown-token").
		Return(nil, fmt.Errorf("credential not found: %w", sentinel.ErrNotFound))

	_, err := s.service.ResolvePublic(context.Background(), "unknown-token", audit.Origin{})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestResolvePublic_NameLookupFailureDegrades() {
	learner := s.learner()
	issuer := s.issuer()
	credential := s.issuedCredential(learner.ID, issuer.ID)

	s.mockStore.EXPECT().FindPublicByToken(gomock.Any(), credential.PublicToken).Return(credential, nil)
	s.mockRecorder.EXPECT().RecordView(gomock.Any(), credential.ID, gomock.Any()).Return(nil)
	s.mockAccounts.EXPECT().FindByID(gomock.Any(), issuer.ID).
		Return(nil, fmt.Errorf("account not found: %w", sentinel.ErrNotFound))
	s.mockAccounts.EXPECT().FindByID(gomock.Any(), learner.ID).Return(learner, nil)

	view, err := s.service.ResolvePublic(context.Background(), credential.PublicToken, audit.Origin{})

	s.Require().NoError(err)
	s.Empty(view.IssuerName)
	s.Equal("Jordan Rivera", view.LearnerName)
}

func (s *ServiceSuite) TestResolvePublic_ExpiredReadsAsExpired() {
	learner := s.learner()
	issuer := s.issuer()
	credential := s.issuedCredential(learner.ID, issuer.ID)
	lapsed := testNow.Add(-48 * time.Hour)
	credential.ExpiryDate = &lapsed

	s.mockStore.EXPECT().FindPublicByToken(gomock.Any(), credential.PublicToken).Return(credential, nil)
	s.mockRecorder.EXPECT().RecordView(gomock.Any(), credential.ID, gomock.Any()).Return(nil)
	s.mockAccounts.EXPECT().FindByID(gomock.Any(), issuer.ID).Return(issuer, nil)
	s.mockAccounts.EXPECT().FindByID(gomock.Any(), learner.ID).Return(learner, nil)

	view, err := s.service.ResolvePublic(context.Background(), credential.PublicToken, audit.Origin{})

	s.Require().NoError(err)
	s.Equal("expired", view.Status)
}
