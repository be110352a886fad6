// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"log/slog"
	"time"

	"sitesmith/internal/kv"
	"sitesmith/internal/models"
)

// settingsKey is where the application settings record lives in the
// key-value store.
const settingsKey = "app_settings"

// Seed ensures the baseline records exist in the key-value store. It
// creates the settings record with the current schema version if absent
// and is a no-op otherwise.
func Seed(kvs *kv.Store) {
	if existing, ok := kv.Load[models.Settings](kvs, settingsKey); ok {
		slog.Info("settings record present, skipping seed", "version", existing.Version)
		return
	}

	now := time.Now()
	kv.Save(kvs, settingsKey, models.Settings{
		Version:   models.SchemaVersion,
		CreatedAt: now,
		UpdatedAt: now,
	})
	slog.Info("settings record seeded", "version", models.SchemaVersion)
}
