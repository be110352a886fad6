// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "errors"

var (
	// ErrUnauthenticated means no current user id could be resolved.
	ErrUnauthenticated = errors.New("store: unauthenticated")

	// ErrAccessDenied means the resolved user does not own the target
	// project. The operation leaves stored state untouched.
	ErrAccessDenied = errors.New("store: access denied")

	// ErrNotFound means the referenced project, section, or template does
	// not exist. Mutations hitting it are logged no-ops so stale UI
	// references (a double-fired delete, say) stay harmless.
	ErrNotFound = errors.New("store: not found")

	// ErrSlugTaken means the requested websiteUrl is already claimed by a
	// different project. Slugs are unique system-wide so public site
	// lookup stays unambiguous.
	ErrSlugTaken = errors.New("store: website url already in use")
)
