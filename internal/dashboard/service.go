// Package dashboard aggregates credential counts for learner and issuer
// home pages.
package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"skillpass/internal/credential/models"
	"skillpass/internal/credential/store"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
)

// Counter is the slice of the credential store the dashboard needs.
type Counter interface {
	Count(ctx context.Context, filter store.Filter) (int, error)
}

// LearnerStats summarizes a learner's credential wallet.
type LearnerStats struct {
	Total            int `json:"total"`
	Issued           int `json:"issued"`
	Verified         int `json:"verified"`
	Public           int `json:"public"`
	SharedOnLinkedIn int `json:"shared_on_linkedin"`
}

// IssuerStats summarizes an issuer's issuance activity.
type IssuerStats struct {
	Total    int `json:"total"`
	Issued   int `json:"issued"`
	Verified int `json:"verified"`
	Revoked  int `json:"revoked"`
}

type Service struct {
	credentials Counter
	logger      *slog.Logger
}

func NewService(credentials Counter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{credentials: credentials, logger: logger}
}

// LearnerStats fans the count queries out concurrently; the five counts are
// independent so the dashboard costs one round trip, not five.
func (s *Service) LearnerStats(ctx context.Context, learnerID id.UserID) (*LearnerStats, error) {
	issued := models.StatusIssued
	verified := models.StatusVerified

	var stats LearnerStats
	g, ctx := errgroup.WithContext(ctx)
	s.count(ctx, g, &stats.Total, store.Filter{LearnerID: &learnerID})
	s.count(ctx, g, &stats.Issued, store.Filter{LearnerID: &learnerID, Status: &issued})
	s.count(ctx, g, &stats.Verified, store.Filter{LearnerID: &learnerID, Status: &verified})
	s.count(ctx, g, &stats.Public, store.Filter{LearnerID: &learnerID, PublicOnly: true})
	s.count(ctx, g, &stats.SharedOnLinkedIn, store.Filter{LearnerID: &learnerID, SharedOnLinkedIn: true})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not compute learner stats")
	}
	return &stats, nil
}

// IssuerStats aggregates counts over everything the issuer has issued.
func (s *Service) IssuerStats(ctx context.Context, issuerID id.UserID) (*IssuerStats, error) {
	issued := models.StatusIssued
	verified := models.StatusVerified
	revoked := models.StatusRevoked

	var stats IssuerStats
	g, ctx := errgroup.WithContext(ctx)
	s.count(ctx, g, &stats.Total, store.Filter{IssuerID: &issuerID})
	s.count(ctx, g, &stats.Issued, store.Filter{IssuerID: &issuerID, Status: &issued})
	s.count(ctx, g, &stats.Verified, store.Filter{IssuerID: &issuerID, Status: &verified})
	s.count(ctx, g, &stats.Revoked, store.Filter{IssuerID: &issuerID, Status: &revoked})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not compute issuer stats")
	}
	return &stats, nil
}

func (s *Service) count(ctx context.Context, g *errgroup.Group, dst *int, filter store.Filter) {
	g.Go(func() error {
		n, err := s.credentials.Count(ctx, filter)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	})
}
