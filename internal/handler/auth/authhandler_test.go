package authhandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ushnuel/next-dashboard/internal/domain"
	"github.com/ushnuel/next-dashboard/pkg/dto"
)

type fakeAuthService struct {
	user  *domain.User
	token string
	err   error

	creds []dto.Credentials
}

func (f *fakeAuthService) Login(creds dto.Credentials) (*domain.User, string, error) {
	f.creds = append(f.creds, creds)
	if f.err != nil {
		return nil, "", f.err
	}
	return f.user, f.token, nil
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLogin(t *testing.T) {
	srv := &fakeAuthService{
		user:  &domain.User{ID: 7, Email: "user@nextmail.com"},
		token: "signed-token",
	}
	h := New(srv)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(`{"email":"user@nextmail.com","password":"123456"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-token", rec.Header().Get("Authorization"))
	assert.JSONEq(t, `{"id":7,"email":"user@nextmail.com"}`, rec.Body.String())

	require.Len(t, srv.creds, 1)
	assert.Equal(t, dto.Credentials{Email: "user@nextmail.com", Password: "123456"}, srv.creds[0])
}

func TestLoginIncorrectCredentials(t *testing.T) {
	srv := &fakeAuthService{err: domain.ErrIncorrectCredentials}
	h := New(srv)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(`{"email":"user@nextmail.com","password":"654321"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestLoginLookupFailure(t *testing.T) {
	srv := &fakeAuthService{err: errors.New("error fetching user: connection refused")}
	h := New(srv)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(`{"email":"user@nextmail.com","password":"123456"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	srv := &fakeAuthService{}
	h := New(srv)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(`{"email":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, srv.creds)
}
