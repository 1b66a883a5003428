package models

import (
	"context"
	"fmt"

	"github.com/casavia/engage/internal/database/dbretry"
	"github.com/casavia/engage/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// UnlockModel provides read-only access to the billing service's listing
// unlock records.
type UnlockModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewUnlock creates a read-only repository over listing unlocks.
func NewUnlock(db *bun.DB, logger *zap.Logger) *UnlockModel {
	return &UnlockModel{
		db:     db,
		logger: logger.Named("db_unlock"),
	}
}

// RecentSuccessful returns the user's most recent successful unlocks,
// newest first.
func (r *UnlockModel) RecentSuccessful(
	ctx context.Context, userID int64, limit int,
) ([]*types.ListingUnlock, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ListingUnlock, error) {
		var unlocks []*types.ListingUnlock

		err := r.db.NewSelect().
			Model(&unlocks).
			Where("user_id = ?", userID).
			Where("status = ?", types.UnlockStatusSuccess).
			Order("created_at DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get recent unlocks for user %d: %w", userID, err)
		}

		return unlocks, nil
	})
}
