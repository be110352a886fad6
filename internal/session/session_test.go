package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnsureIdentityIssuesBothCookies(t *testing.T) {
	m := NewManager(false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/site/acme", nil)

	visitorID, sessionID, err := m.EnsureIdentity(w, r)
	if err != nil {
		t.Fatalf("EnsureIdentity: %v", err)
	}
	if visitorID == "" || sessionID == "" {
		t.Fatal("expected non-empty ids")
	}
	if visitorID == sessionID {
		t.Error("visitor and session ids must differ")
	}

	cookies := w.Result().Cookies()
	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}

	visitor, ok := byName[VisitorCookie]
	if !ok {
		t.Fatal("visitor cookie not set")
	}
	if visitor.MaxAge != visitorMaxAge {
		t.Errorf("visitor max age: got %d, want %d", visitor.MaxAge, visitorMaxAge)
	}

	sess, ok := byName[SessionCookie]
	if !ok {
		t.Fatal("session cookie not set")
	}
	// Session cookie expires with the browser session.
	if sess.MaxAge != 0 {
		t.Errorf("session max age: got %d, want 0", sess.MaxAge)
	}
}

func TestEnsureIdentityReusesExistingIDs(t *testing.T) {
	m := NewManager(false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/site/acme", nil)
	r.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "visitor-1"})
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "session-1"})

	visitorID, sessionID, err := m.EnsureIdentity(w, r)
	if err != nil {
		t.Fatalf("EnsureIdentity: %v", err)
	}
	if visitorID != "visitor-1" || sessionID != "session-1" {
		t.Errorf("ids: got %q/%q, want existing values", visitorID, sessionID)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("no cookies should be reissued when both exist")
	}
}

func TestEnsureIdentityNewSessionKeepsVisitor(t *testing.T) {
	m := NewManager(false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/site/acme", nil)
	r.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "visitor-1"})

	visitorID, sessionID, err := m.EnsureIdentity(w, r)
	if err != nil {
		t.Fatalf("EnsureIdentity: %v", err)
	}
	if visitorID != "visitor-1" {
		t.Errorf("visitor id: got %q, want visitor-1", visitorID)
	}
	if sessionID == "" {
		t.Error("expected fresh session id")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie {
		t.Errorf("expected only a session cookie, got %v", cookies)
	}
}
