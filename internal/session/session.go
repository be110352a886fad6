// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session assigns analytics identity to public site viewers: a
// long-lived visitor id (stable across sessions) and a short-lived
// session id (expires with the browser session). Both live in cookies —
// the browser is the durable store, this package only issues and reads
// them.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
)

const (
	// VisitorCookie is the stable visitor identity, kept for a year.
	VisitorCookie = "ss_visitor"
	// SessionCookie identifies one viewing session; no MaxAge, so it
	// expires when the browser session ends.
	SessionCookie = "ss_session"

	// visitorMaxAge is one year in seconds.
	visitorMaxAge = 365 * 24 * 60 * 60

	// idLength is the byte length of random ids (16 bytes = 32 hex chars).
	idLength = 16
)

// Manager issues and reads visitor/session identity cookies.
type Manager struct {
	secure bool
}

// NewManager creates a manager. secure marks issued cookies HTTPS-only.
func NewManager(secure bool) *Manager {
	return &Manager{secure: secure}
}

// EnsureIdentity returns the request's visitor and session ids, issuing
// fresh ones (and setting cookies) for whichever is missing.
func (m *Manager) EnsureIdentity(w http.ResponseWriter, r *http.Request) (visitorID, sessionID string, err error) {
	visitorID, err = m.ensureCookie(w, r, VisitorCookie, visitorMaxAge)
	if err != nil {
		return "", "", err
	}
	sessionID, err = m.ensureCookie(w, r, SessionCookie, 0)
	if err != nil {
		return "", "", err
	}
	return visitorID, sessionID, nil
}

// ensureCookie reads an identity cookie, minting and setting a new one
// if absent. maxAge 0 issues a browser-session cookie.
func (m *Manager) ensureCookie(w http.ResponseWriter, r *http.Request, name string, maxAge int) (string, error) {
	if c, err := r.Cookie(name); err == nil && c.Value != "" {
		return c.Value, nil
	}

	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
	return id, nil
}

// generateID returns a cryptographically random hex id.
func generateID() (string, error) {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
