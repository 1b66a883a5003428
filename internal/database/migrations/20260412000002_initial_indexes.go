package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			// Debounce lookup: latest event of one type for one (user, listing) pair
			`CREATE INDEX IF NOT EXISTS idx_events_pair_type_time
				ON interaction_events (user_id, listing_id, event_type, created_at DESC)`,
			// Windowed aggregation over a listing set
			`CREATE INDEX IF NOT EXISTS idx_events_listing_time
				ON interaction_events (listing_id, created_at)`,
			// Favorite parity projection per user
			`CREATE INDEX IF NOT EXISTS idx_events_user_type
				ON interaction_events (user_id, event_type)`,
			`CREATE INDEX IF NOT EXISTS idx_listings_owner
				ON listings (owner_id)`,
			`CREATE INDEX IF NOT EXISTS idx_listings_status_created
				ON listings (status, created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_areas_region
				ON areas (region_id)`,
			`CREATE INDEX IF NOT EXISTS idx_unlocks_user_status_time
				ON listing_unlocks (user_id, status, created_at DESC)`,
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"idx_events_pair_type_time",
			"idx_events_listing_time",
			"idx_events_user_type",
			"idx_listings_owner",
			"idx_listings_status_created",
			"idx_areas_region",
			"idx_unlocks_user_status_time",
		}

		for _, index := range indexes {
			if _, err := db.NewRaw("DROP INDEX IF EXISTS " + index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop index %s: %w", index, err)
			}
		}

		return nil
	})
}
