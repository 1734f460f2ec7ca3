package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks CredentialStore,AccountDirectory,TemplateStore,ViewShareRecorder

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	accountModels "skillpass/internal/account/models"
	"skillpass/internal/credential/models"
	"skillpass/internal/credential/service/mocks"
	templateModels "skillpass/internal/template/models"
	id "skillpass/pkg/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockStore     *mocks.MockCredentialStore
	mockAccounts  *mocks.MockAccountDirectory
	mockTemplates *mocks.MockTemplateStore
	mockRecorder  *mocks.MockViewShareRecorder
	service       *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockCredentialStore(s.ctrl)
	s.mockAccounts = mocks.NewMockAccountDirectory(s.ctrl)
	s.mockTemplates = mocks.NewMockTemplateStore(s.ctrl)
	s.mockRecorder = mocks.NewMockViewShareRecorder(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewService(s.mockStore, s.mockAccounts, s.mockTemplates,
		WithLogger(logger),
		WithRecorder(s.mockRecorder),
		WithClock(func() time.Time { return testNow }),
	)
}

func (s *ServiceSuite) learner() *accountModels.Account {
	return &accountModels.Account{
		ID:            id.NewUserID(),
		Email:         "learner@example.com",
		Role:          id.RoleLearner,
		FirstName:     "Jordan",
		LastName:      "Rivera",
		PublicProfile: true,
	}
}

func (s *ServiceSuite) issuer() *accountModels.Account {
	return &accountModels.Account{
		ID:        id.NewUserID(),
		Email:     "issuer@example.com",
		Role:      id.RoleIssuer,
		FirstName: "Tech",
		LastName:  "Academy",
	}
}

func (s *ServiceSuite) template(issuerID id.UserID) *templateModels.Template {
	return &templateModels.Template{
		ID:          id.NewTemplateID(),
		IssuerID:    issuerID,
		Name:        "Python Developer Certification",
		Description: "Covers core Python.",
		BadgeType:   templateModels.BadgeTypeCertification,
		Skills:      []string{"python", "testing"},
		Tags:        []string{"backend"},
		Active:      true,
		CreatedAt:   testNow,
	}
}

func (s *ServiceSuite) issuedCredential(learnerID, issuerID id.UserID) *models.Credential {
	return &models.Credential{
		ID:               id.NewCredentialID(),
		LearnerID:        learnerID,
		IssuerID:         issuerID,
		Title:            "Python Developer Certification",
		Skills:           []string{"python"},
		IssuedAt:         testNow,
		UpdatedAt:        testNow,
		Status:           models.StatusIssued,
		IsPublic:         true,
		VerificationCode: "AB12CD34",
		PublicToken:      "8f14e45f-ea4c-4f22-9913-17b2c1a9b1f0",
	}
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
