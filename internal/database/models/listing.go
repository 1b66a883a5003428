package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/casavia/engage/internal/database/dbretry"
	"github.com/casavia/engage/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ListingModel provides read-only access to the marketplace's listing and
// area tables. Listing writes belong to the listings service.
type ListingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewListing creates a read-only repository over listings and areas.
func NewListing(db *bun.DB, logger *zap.Logger) *ListingModel {
	return &ListingModel{
		db:     db,
		logger: logger.Named("db_listing"),
	}
}

// GetByID fetches a single listing. Returns ErrListingNotFound when the
// listing does not exist.
func (r *ListingModel) GetByID(ctx context.Context, listingID int64) (*types.Listing, error) {
	var listing types.Listing

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&listing).
			Where("id = ?", listingID).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrListingNotFound
		}

		return nil, fmt.Errorf("failed to get listing %d: %w", listingID, err)
	}

	return &listing, nil
}

// GetByIDs fetches the given listings in no particular order. Missing ids
// are silently absent from the result.
func (r *ListingModel) GetByIDs(ctx context.Context, listingIDs []int64) ([]*types.Listing, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Listing, error) {
		var listings []*types.Listing

		err := r.db.NewSelect().
			Model(&listings).
			Where("id IN (?)", bun.In(listingIDs)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get listings by ids: %w", err)
		}

		return listings, nil
	})
}

// GetAvailableByIDs fetches the given listings restricted to those still
// visible to visitors.
func (r *ListingModel) GetAvailableByIDs(ctx context.Context, listingIDs []int64) ([]*types.Listing, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Listing, error) {
		var listings []*types.Listing

		err := r.db.NewSelect().
			Model(&listings).
			Where("id IN (?)", bun.In(listingIDs)).
			Where("status = ?", types.ListingStatusAvailable).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get available listings by ids: %w", err)
		}

		return listings, nil
	})
}

// IDsByOwner returns the ids of every listing owned by the given user,
// regardless of status. Owner analytics cover delisted inventory too.
func (r *ListingModel) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]int64, error) {
		var ids []int64

		err := r.db.NewSelect().
			Model((*types.Listing)(nil)).
			Column("id").
			Where("owner_id = ?", ownerID).
			Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get listing ids for owner %d: %w", ownerID, err)
		}

		return ids, nil
	})
}

// Latest returns the most recently created available listings.
func (r *ListingModel) Latest(ctx context.Context, limit int) ([]*types.Listing, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Listing, error) {
		var listings []*types.Listing

		err := r.db.NewSelect().
			Model(&listings).
			Where("status = ?", types.ListingStatusAvailable).
			Order("created_at DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest listings: %w", err)
		}

		return listings, nil
	})
}

// Match runs the personalized match in random order: available,
// non-excluded listings where (category preferred AND price in band) OR the
// listing's area belongs to a preferred region. An empty query matches
// nothing.
func (r *ListingModel) Match(ctx context.Context, match *types.ListingMatchQuery) ([]*types.Listing, error) {
	if match.Empty() {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Listing, error) {
		var listings []*types.Listing

		query := r.db.NewSelect().
			Model(&listings).
			Where("status = ?", types.ListingStatusAvailable)

		if len(match.ExcludeIDs) > 0 {
			query = query.Where("id NOT IN (?)", bun.In(match.ExcludeIDs))
		}

		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			if len(match.CategoryIDs) > 0 {
				q = q.WhereGroup(" OR ", func(q *bun.SelectQuery) *bun.SelectQuery {
					return q.
						Where("category_id IN (?)", bun.In(match.CategoryIDs)).
						Where("price BETWEEN ? AND ?", match.MinPrice, match.MaxPrice)
				})
			}

			if len(match.RegionIDs) > 0 {
				regionAreas := r.db.NewSelect().
					Model((*types.Area)(nil)).
					Column("id").
					Where("region_id IN (?)", bun.In(match.RegionIDs))

				q = q.WhereOr("area_id IN (?)", regionAreas)
			}

			return q
		})

		err := query.
			OrderExpr("RANDOM()").
			Limit(match.Limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to match listings: %w", err)
		}

		return listings, nil
	})
}

// MatchCategories is the relaxed fallback tier: available, non-excluded
// listings in the preferred categories, most recent first, with price and
// area constraints dropped.
func (r *ListingModel) MatchCategories(
	ctx context.Context, categoryIDs, excludeIDs []int64, limit int,
) ([]*types.Listing, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Listing, error) {
		var listings []*types.Listing

		query := r.db.NewSelect().
			Model(&listings).
			Where("status = ?", types.ListingStatusAvailable).
			Where("category_id IN (?)", bun.In(categoryIDs))

		if len(excludeIDs) > 0 {
			query = query.Where("id NOT IN (?)", bun.In(excludeIDs))
		}

		err := query.
			Order("created_at DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to match listings by category: %w", err)
		}

		return listings, nil
	})
}

// RegionIDsForAreas resolves the parent regions of the given areas.
func (r *ListingModel) RegionIDsForAreas(ctx context.Context, areaIDs []int64) ([]int64, error) {
	if len(areaIDs) == 0 {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]int64, error) {
		var regionIDs []int64

		err := r.db.NewSelect().
			Model((*types.Area)(nil)).
			ColumnExpr("DISTINCT region_id").
			Where("id IN (?)", bun.In(areaIDs)).
			Scan(ctx, &regionIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve regions for areas: %w", err)
		}

		return regionIDs, nil
	})
}
