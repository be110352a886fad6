package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIdentityResolvesHeader(t *testing.T) {
	var gotID string
	var gotOK bool
	h := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFromCtx(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	r.Header.Set(UserHeader, "user-42")
	h.ServeHTTP(httptest.NewRecorder(), r)

	if !gotOK || gotID != "user-42" {
		t.Errorf("identity: got %q/%v, want user-42/true", gotID, gotOK)
	}
}

func TestIdentityAbsentHeader(t *testing.T) {
	var gotOK bool
	h := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = UserIDFromCtx(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if gotOK {
		t.Error("expected no identity without header")
	}
}

func TestUserIDFromCtxEmptyContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromCtx(r.Context()); ok {
		t.Error("expected false on bare context")
	}
}
