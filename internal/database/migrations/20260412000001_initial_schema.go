package migrations

import (
	"context"
	"fmt"

	"github.com/casavia/engage/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// The listing, area and unlock tables are owned and written by the
		// marketplace and billing services; they are created here too so a
		// standalone development database works without those services.
		models := []any{
			(*types.InteractionEvent)(nil),
			(*types.Listing)(nil),
			(*types.Area)(nil),
			(*types.ListingUnlock)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.ListingUnlock)(nil),
			(*types.Area)(nil),
			(*types.Listing)(nil),
			(*types.InteractionEvent)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table %T: %w", model, err)
			}
		}

		return nil
	})
}
