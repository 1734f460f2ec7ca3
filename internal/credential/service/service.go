package service

import (
	"context"
	"log/slog"
	"time"

	accountModels "skillpass/internal/account/models"
	"skillpass/internal/audit"
	"skillpass/internal/credential/codes"
	"skillpass/internal/credential/models"
	"skillpass/internal/credential/store"
	"skillpass/internal/platform/metrics"
	"skillpass/internal/platform/tracer"
	templateModels "skillpass/internal/template/models"
	id "skillpass/pkg/domain"
)

// CredentialStore defines the persistence interface for credentials.
// Error Contract: Find methods return wrapped sentinel.ErrNotFound when the
// credential doesn't exist; Insert returns wrapped sentinel.ErrDuplicateCode /
// ErrDuplicateToken on identifier collision.
type CredentialStore interface {
	Insert(ctx context.Context, credential *models.Credential) error
	FindByID(ctx context.Context, credentialID id.CredentialID) (*models.Credential, error)
	FindByCode(ctx context.Context, code string) (*models.Credential, error)
	FindPublicByToken(ctx context.Context, token string) (*models.Credential, error)
	MarkVerified(ctx context.Context, credentialID id.CredentialID, at time.Time) (bool, error)
	MarkSharedOnLinkedIn(ctx context.Context, credentialID id.CredentialID) error
	Update(ctx context.Context, credential *models.Credential) error
	Delete(ctx context.Context, credentialID id.CredentialID) error
	ListByLearner(ctx context.Context, learnerID id.UserID, publicOnly bool, offset, limit int) ([]*models.Credential, error)
	ListByIssuer(ctx context.Context, issuerID id.UserID, offset, limit int) ([]*models.Credential, error)
	Count(ctx context.Context, filter store.Filter) (int, error)
}

// AccountDirectory resolves platform accounts. The issuance workflow only
// reads accounts, so the port is intentionally narrow.
// Error Contract: both methods return wrapped sentinel.ErrNotFound when the
// account doesn't exist.
type AccountDirectory interface {
	FindByID(ctx context.Context, userID id.UserID) (*accountModels.Account, error)
	FindByEmail(ctx context.Context, email string) (*accountModels.Account, error)
}

// TemplateStore resolves badge templates for template-based issuance.
type TemplateStore interface {
	FindByID(ctx context.Context, templateID id.TemplateID) (*templateModels.Template, error)
}

// ViewShareRecorder captures view and share events. Recording is best-effort;
// the service logs recorder errors and never propagates them.
type ViewShareRecorder interface {
	RecordView(ctx context.Context, credentialID id.CredentialID, origin audit.Origin) error
	RecordShare(ctx context.Context, credentialID id.CredentialID, actorID id.UserID, platform string) error
}

// Service implements the credential workflow: issuance, verification, public
// resolution, sharing, and issuer-side lifecycle management.
type Service struct {
	credentials CredentialStore
	accounts    AccountDirectory
	templates   TemplateStore
	recorder    ViewShareRecorder
	allocator   *codes.Allocator
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      tracer.Tracer
	nowFunc     func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithRecorder(recorder ViewShareRecorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

// WithAllocator overrides the identifier allocator, used to tighten the
// redraw ceiling in tests.
func WithAllocator(allocator *codes.Allocator) Option {
	return func(s *Service) {
		if allocator != nil {
			s.allocator = allocator
		}
	}
}

// WithClock overrides the time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.nowFunc = now
		}
	}
}

func NewService(credentials CredentialStore, accounts AccountDirectory, templates TemplateStore, opts ...Option) *Service {
	svc := &Service{
		credentials: credentials,
		accounts:    accounts,
		templates:   templates,
		tracer:      tracer.Noop{},
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.allocator == nil {
		svc.allocator = codes.NewAllocator(codes.WithRetryHook(svc.identifierRetried))
	}
	return svc
}

func (s *Service) identifierRetried() {
	if s.metrics != nil {
		s.metrics.IdentifierRetries.Inc()
	}
}

func (s *Service) now() time.Time {
	return s.nowFunc()
}
