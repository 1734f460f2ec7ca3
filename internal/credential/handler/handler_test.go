package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountModels "skillpass/internal/account/models"
	accountStore "skillpass/internal/account/store"
	"skillpass/internal/audit"
	"skillpass/internal/credential/service"
	credentialStore "skillpass/internal/credential/store"
	"skillpass/internal/platform/middleware"
	"skillpass/internal/platform/token"
	templateStore "skillpass/internal/template/store"
	id "skillpass/pkg/domain"
)

type fixture struct {
	router   *chi.Mux
	accounts *accountStore.InMemoryStore
	events   *audit.InMemoryStore
	tokens   *token.Service
	issuer   *accountModels.Account
	learner  *accountModels.Account
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	accounts := accountStore.NewInMemory()
	templates := templateStore.NewInMemory()
	credentials := credentialStore.NewInMemory()
	events := audit.NewInMemoryStore()
	recorder := audit.NewRecorder(events)

	svc := service.NewService(credentials, accounts, templates,
		service.WithLogger(logger),
		service.WithRecorder(recorder),
	)
	tokens := token.NewService("test-signing-key", time.Hour)
	h := New(svc, logger)

	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		h.RegisterPublic(r)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens, logger))
			h.Register(r)
		})
	})

	issuer := &accountModels.Account{
		ID:        id.NewUserID(),
		Email:     "issuer@example.com",
		Role:      id.RoleIssuer,
		FirstName: "Tech",
		LastName:  "Academy",
	}
	learner := &accountModels.Account{
		ID:            id.NewUserID(),
		Email:         "learner@example.com",
		Role:          id.RoleLearner,
		FirstName:     "Jordan",
		LastName:      "Rivera",
		PublicProfile: true,
	}
	require.NoError(t, accounts.Save(context.Background(), issuer))
	require.NoError(t, accounts.Save(context.Background(), learner))

	return &fixture{
		router:   router,
		accounts: accounts,
		events:   events,
		tokens:   tokens,
		issuer:   issuer,
		learner:  learner,
	}
}

func (f *fixture) bearerFor(t *testing.T, account *accountModels.Account) string {
	t.Helper()
	signed, err := f.tokens.Generate(account.ID, account.Role)
	require.NoError(t, err)
	return "Bearer " + signed
}

func (f *fixture) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) issueCredential(t *testing.T, isPublic bool) *CredentialResponse {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/credentials", f.bearerFor(t, f.issuer), IssueRequest{
		LearnerEmail: f.learner.Email,
		Title:        "Go Fundamentals",
		Skills:       []string{"go"},
		IsPublic:     isPublic,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp CredentialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func TestIssue_Created(t *testing.T) {
	f := newFixture(t)

	resp := f.issueCredential(t, true)

	assert.Equal(t, "issued", resp.Status)
	assert.Len(t, resp.VerificationCode, 8)
	assert.NotEmpty(t, resp.PublicToken)
	assert.Equal(t, f.learner.ID.String(), resp.LearnerID)
	assert.Equal(t, f.issuer.ID.String(), resp.IssuerID)
}

func TestIssue_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/credentials", "", IssueRequest{
		LearnerEmail: f.learner.Email,
		Title:        "Go Fundamentals",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIssue_LearnerForbidden(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/credentials", f.bearerFor(t, f.learner), IssueRequest{
		LearnerEmail: f.learner.Email,
		Title:        "Go Fundamentals",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIssue_UnknownLearner(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/credentials", f.bearerFor(t, f.issuer), IssueRequest{
		LearnerEmail: "nobody@example.com",
		Title:        "Go Fundamentals",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIssue_MissingTitle(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/credentials", f.bearerFor(t, f.issuer), IssueRequest{
		LearnerEmail: f.learner.Email,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerify_TransitionsOnceThenIdempotent(t *testing.T) {
	f := newFixture(t)
	issued := f.issueCredential(t, false)

	rec := f.do(t, http.MethodPost, "/api/v1/verify", "", VerifyRequest{Code: issued.VerificationCode})
	require.Equal(t, http.StatusOK, rec.Code)

	var first VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.True(t, first.Valid)
	assert.True(t, first.FirstVerification)
	assert.Equal(t, "verified", first.Credential.Status)
	require.NotNil(t, first.Credential.VerifiedAt)

	rec = f.do(t, http.MethodPost, "/api/v1/verify", "", VerifyRequest{Code: issued.VerificationCode})
	require.Equal(t, http.StatusOK, rec.Code)

	var second VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.True(t, second.Valid)
	assert.False(t, second.FirstVerification)
	assert.Equal(t, first.Credential.VerifiedAt, second.Credential.VerifiedAt)
}

func TestVerify_ByPathSegment(t *testing.T) {
	f := newFixture(t)
	issued := f.issueCredential(t, false)

	rec := f.do(t, http.MethodGet, "/api/v1/verify/"+issued.VerificationCode, "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestVerify_UnknownCode(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/verify", "", VerifyRequest{Code: "NOPE0000"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicView_RedactedAndRecorded(t *testing.T) {
	f := newFixture(t)
	issued := f.issueCredential(t, true)

	rec := f.do(t, http.MethodGet, "/api/v1/public/credentials/"+issued.PublicToken, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Go Fundamentals", view["title"])
	assert.Equal(t, "Tech Academy", view["issuer_name"])
	assert.Equal(t, "Jordan Rivera", view["learner_name"])
	assert.NotContains(t, rec.Body.String(), issued.VerificationCode)
	assert.NotContains(t, rec.Body.String(), issued.ID)

	credentialID, err := id.ParseCredentialID(issued.ID)
	require.NoError(t, err)
	views, err := f.events.CountByCredential(context.Background(), credentialID, audit.KindView)
	require.NoError(t, err)
	assert.Equal(t, 1, views)
}

func TestPublicView_PrivateIndistinguishableFromMissing(t *testing.T) {
	f := newFixture(t)
	private := f.issueCredential(t, false)

	recPrivate := f.do(t, http.MethodGet, "/api/v1/public/credentials/"+private.PublicToken, "", nil)
	recMissing := f.do(t, http.MethodGet, "/api/v1/public/credentials/9e107d9d-0721-4b95-8cbe-7d9dc0a0f1a3", "", nil)

	assert.Equal(t, http.StatusNotFound, recPrivate.Code)
	assert.Equal(t, http.StatusNotFound, recMissing.Code)
	assert.JSONEq(t, recMissing.Body.String(), recPrivate.Body.String())
}

func TestShare_LinkedInSetsFlag(t *testing.T) {
	f := newFixture(t)
	issued := f.issueCredential(t, true)

	rec := f.do(t, http.MethodPost, "/api/v1/credentials/"+issued.ID+"/share",
		f.bearerFor(t, f.learner), ShareRequest{Platform: "linkedin"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	get := f.do(t, http.MethodGet, "/api/v1/credentials/"+issued.ID, f.bearerFor(t, f.learner), nil)
	require.Equal(t, http.StatusOK, get.Code)

	var resp CredentialResponse
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &resp))
	assert.True(t, resp.SharedOnLinkedIn)
}

func TestShare_ForeignCredentialDenied(t *testing.T) {
	f := newFixture(t)
	issued := f.issueCredential(t, true)

	stranger := &accountModels.Account{
		ID:    id.NewUserID(),
		Email: "other@example.com",
		Role:  id.RoleLearner,
	}
	require.NoError(t, f.accounts.Save(context.Background(), stranger))

	rec := f.do(t, http.MethodPost, "/api/v1/credentials/"+issued.ID+"/share",
		f.bearerFor(t, stranger), ShareRequest{Platform: "linkedin"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdate_IssuerEdits(t *testing.T) {
	f := newFixture(t)
	issued := f.issueCredential(t, true)

	title := "Advanced Go"
	rec := f.do(t, http.MethodPut, "/api/v1/credentials/"+issued.ID,
		f.bearerFor(t, f.issuer), UpdateRequest{Title: &title})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp CredentialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Advanced Go", resp.Title)
	assert.Equal(t, issued.VerificationCode, resp.VerificationCode)
}

func TestRevokeThenVerify_Invalid(t *testing.T) {
	f := newFixture(t)
	issued := f.issueCredential(t, true)

	rec := f.do(t, http.MethodPost, "/api/v1/credentials/"+issued.ID+"/revoke",
		f.bearerFor(t, f.issuer), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	verify := f.do(t, http.MethodPost, "/api/v1/verify", "", VerifyRequest{Code: issued.VerificationCode})
	require.Equal(t, http.StatusOK, verify.Code)

	var resp VerifyResponse
	require.NoError(t, json.Unmarshal(verify.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, "revoked", resp.Credential.Status)
}

func TestDelete_NoContent(t *testing.T) {
	f := newFixture(t)
	issued := f.issueCredential(t, true)

	rec := f.do(t, http.MethodDelete, "/api/v1/credentials/"+issued.ID, f.bearerFor(t, f.issuer), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	get := f.do(t, http.MethodGet, "/api/v1/credentials/"+issued.ID, f.bearerFor(t, f.issuer), nil)
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestList_LearnerSeesOwn(t *testing.T) {
	f := newFixture(t)
	f.issueCredential(t, true)
	f.issueCredential(t, false)

	rec := f.do(t, http.MethodGet, "/api/v1/credentials", f.bearerFor(t, f.learner), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []*CredentialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	rec = f.do(t, http.MethodGet, "/api/v1/credentials?public_only=true", f.bearerFor(t, f.learner), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestGet_InvalidID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/credentials/not-a-uuid", f.bearerFor(t, f.learner), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
