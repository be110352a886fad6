// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// userIDKey is the context key for the resolved user id.
const userIDKey contextKey = "user_id"

// UserHeader carries the authenticated subject id. Authentication is
// handled upstream (a gateway or the host app's auth layer); this
// service consumes only the resolved identity.
const UserHeader = "X-User-ID"

// Identity resolves the current user id from the request and stores it
// in the context. It does NOT enforce authentication — handlers and the
// project store decide per operation whether an identity is required.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get(UserHeader); userID != "" {
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromCtx returns the resolved user id, or false when the request
// carried no identity. This is the IdentityResolver wired into the
// project store.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
