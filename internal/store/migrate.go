// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"nishat/internal/document"
	"nishat/internal/models"
)

// SchemaVersionsDocument records, per document name, the highest data
// migration applied to it.
const SchemaVersionsDocument = "schema-versions"

// heroMigration rewrites hero image records in place and returns how many
// it touched.
type heroMigration struct {
	version int
	name    string
	apply   func(images []models.HeroImage) int
}

// heroMigrations run in order. Append only; never renumber.
var heroMigrations = []heroMigration{
	{version: 1, name: "backfill page", apply: backfillHeroPage},
}

func backfillHeroPage(images []models.HeroImage) int {
	n := 0
	for i := range images {
		if images[i].Page == "" {
			images[i].Page = models.DefaultHeroPage
			n++
		}
	}
	return n
}

// Migrate applies every hero image migration newer than the recorded
// version. Safe to run on every startup.
func (s *HeroStore) Migrate(ctx context.Context) error {
	versions, err := s.versions.Read(ctx)
	if err != nil {
		return fmt.Errorf("migrate hero images: %w", err)
	}
	current := versions[HeroImagesDocument]

	latest := current
	err = s.doc.RewriteRaw(ctx, func(data []byte) ([]byte, bool, error) {
		var images []models.HeroImage
		if err := json.Unmarshal(data, &images); err != nil {
			return nil, false, fmt.Errorf("decode %s: %w", HeroImagesDocument, err)
		}

		touched := 0
		for _, m := range heroMigrations {
			if m.version <= current {
				continue
			}
			n := m.apply(images)
			touched += n
			latest = m.version
			slog.Info("data migration applied",
				"document", HeroImagesDocument,
				"version", m.version,
				"name", m.name,
				"records", n,
			)
		}
		if touched == 0 {
			return nil, false, nil
		}

		out, err := document.Encode(images)
		if err != nil {
			return nil, false, fmt.Errorf("encode %s: %w", HeroImagesDocument, err)
		}
		return out, true, nil
	})
	if err != nil {
		return fmt.Errorf("migrate hero images: %w", err)
	}

	if latest == current {
		return nil
	}
	err = s.versions.Update(ctx, func(v *map[string]int) error {
		if *v == nil {
			*v = map[string]int{}
		}
		(*v)[HeroImagesDocument] = latest
		return nil
	})
	if err != nil {
		return fmt.Errorf("record hero image version: %w", err)
	}
	return nil
}
