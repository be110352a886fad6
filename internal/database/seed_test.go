// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"testing"

	"sitesmith/internal/kv"
	"sitesmith/internal/models"
)

func TestSeedCreatesSettingsOnce(t *testing.T) {
	kvs := kv.New(kv.NewMemBackend())

	Seed(kvs)

	settings, ok := kv.Load[models.Settings](kvs, settingsKey)
	if !ok {
		t.Fatal("settings record not created")
	}
	if settings.Version != models.SchemaVersion {
		t.Errorf("version: got %d, want %d", settings.Version, models.SchemaVersion)
	}

	// A second seed leaves the existing record untouched.
	created := settings.CreatedAt
	Seed(kvs)
	settings, _ = kv.Load[models.Settings](kvs, settingsKey)
	if !settings.CreatedAt.Equal(created) {
		t.Errorf("created_at changed on reseed: got %v, want %v", settings.CreatedAt, created)
	}
}
