package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestRejectsRequestWithoutToken(t *testing.T) {
	is := is.New(t)
	middleware := newEnticator(t).RequireAccess(AnyScope)

	called := false
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/alerts", nil))

	is.Equal(http.StatusUnauthorized, res.Code)
	is.Equal(false, called)
}

func TestRejectsTokenDeniedByPolicy(t *testing.T) {
	is := is.New(t)
	middleware := newEnticator(t).RequireAccess(AnyScope)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	req.Header.Set("Authorization", "Bearer someone-else")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestGrantsWorkspacesFromPolicyResult(t *testing.T) {
	is := is.New(t)
	middleware := newEnticator(t).RequireAccess(AnyScope)

	var workspaces []string
	var userID string

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaces = GetAllowedWorkspacesFromContext(r.Context())
		userID = GetUserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal([]string{"default"}, workspaces)
	is.Equal("user-1", userID)
}

func TestFallsBackToUserIDHeader(t *testing.T) {
	is := is.New(t)
	middleware := newEnticator(t).RequireAccess(AnyScope)

	var userID string

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = GetUserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	req.Header.Set("Authorization", "Bearer service-token")
	req.Header.Set("X-User-ID", "carol")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal("carol", userID)
}

func TestDefaultsToDevUserWhenAnonymous(t *testing.T) {
	is := is.New(t)
	middleware := newEnticator(t).RequireAccess(AnyScope)

	var userID string

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = GetUserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	req.Header.Set("Authorization", "Bearer service-token")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(DefaultUserID, userID)
}

func newEnticator(t *testing.T) Enticator {
	is := is.New(t)

	e, err := NewAuthenticator(context.Background(), strings.NewReader(policies))
	is.NoErr(err)

	return e
}

const policies string = `
package dataplatform.authz

default allow := false

allow := {"access": {"default": ["read", "write"]}, "sub": "user-1"} if {
	input.token == "user-token"
}

allow := {"access": {"default": ["read"]}} if {
	input.token == "service-token"
}
`
