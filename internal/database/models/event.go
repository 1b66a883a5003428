package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/casavia/engage/internal/database/dbretry"
	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// EventModel handles database operations for the append-only interaction
// event log. Events are only ever inserted; every read is a projection.
type EventModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewEvent creates a repository with database access for storing and
// aggregating interaction events.
func NewEvent(db *bun.DB, logger *zap.Logger) *EventModel {
	return &EventModel{
		db:     db,
		logger: logger.Named("db_event"),
	}
}

// Append stores a single interaction event.
func (r *EventModel) Append(ctx context.Context, event *types.InteractionEvent) error {
	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().Model(event).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to append interaction event: %w", err)
		}

		return nil
	})
	if err != nil {
		r.logger.Error("Failed to append interaction event",
			zap.Error(err),
			zap.Int64("userID", event.UserID),
			zap.Int64("listingID", event.ListingID),
			zap.String("eventType", event.EventType.String()))

		return err
	}

	r.logger.Debug("Appended interaction event",
		zap.Int64("userID", event.UserID),
		zap.Int64("listingID", event.ListingID),
		zap.String("eventType", event.EventType.String()))

	return nil
}

// LatestEventTime returns when the user last produced an event of the given
// type against the listing. The boolean is false when no such event exists.
func (r *EventModel) LatestEventTime(
	ctx context.Context, userID, listingID int64, eventType enum.EventType,
) (time.Time, bool, error) {
	var event types.InteractionEvent

	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&event).
			Column("created_at").
			Where("user_id = ?", userID).
			Where("listing_id = ?", listingID).
			Where("event_type = ?", eventType).
			Order("created_at DESC").
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}

		return time.Time{}, false, fmt.Errorf(
			"failed to get latest %s event for user %d listing %d: %w",
			eventType, userID, listingID, err)
	}

	return event.CreatedAt, true, nil
}

// FavoriteParity counts favorite and unfavorite events for one (user,
// listing) pair across full history.
func (r *EventModel) FavoriteParity(
	ctx context.Context, userID, listingID int64,
) (favorites, unfavorites int, err error) {
	rows, err := dbretry.Operation(ctx, func(ctx context.Context) ([]*types.EventTypeCount, error) {
		var rows []*types.EventTypeCount

		err := r.db.NewSelect().
			Model((*types.InteractionEvent)(nil)).
			ColumnExpr("event_type").
			ColumnExpr("COUNT(*) AS count").
			Where("user_id = ?", userID).
			Where("listing_id = ?", listingID).
			Where("event_type IN (?)", bun.In([]enum.EventType{enum.EventTypeFavorite, enum.EventTypeUnfavorite})).
			Group("event_type").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to count favorite parity: %w", err)
		}

		return rows, nil
	})
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		switch row.EventType {
		case enum.EventTypeFavorite:
			favorites = row.Count
		case enum.EventTypeUnfavorite:
			unfavorites = row.Count
		}
	}

	return favorites, unfavorites, nil
}

// FavoritedListingIDs returns the listing ids the user currently has
// favorited, most recently favorited first. The parity filter runs in one
// grouped query so cost stays flat in the number of favorited listings.
func (r *EventModel) FavoritedListingIDs(
	ctx context.Context, userID int64, limit, offset int,
) ([]int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]int64, error) {
		var ids []int64

		err := r.db.NewSelect().
			Model((*types.InteractionEvent)(nil)).
			ColumnExpr("listing_id").
			Where("user_id = ?", userID).
			Where("listing_id IS NOT NULL").
			Where("event_type IN (?)", bun.In([]enum.EventType{enum.EventTypeFavorite, enum.EventTypeUnfavorite})).
			Group("listing_id").
			Having("COUNT(*) FILTER (WHERE event_type = ?) > COUNT(*) FILTER (WHERE event_type = ?)",
				enum.EventTypeFavorite, enum.EventTypeUnfavorite).
			OrderExpr("MAX(created_at) FILTER (WHERE event_type = ?) DESC", enum.EventTypeFavorite).
			Limit(limit).
			Offset(offset).
			Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get favorited listing ids for user %d: %w", userID, err)
		}

		return ids, nil
	})
}

// TotalsByType counts events per type across the given listings since the
// window start.
func (r *EventModel) TotalsByType(
	ctx context.Context, listingIDs []int64, since time.Time,
) ([]*types.EventTypeCount, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.EventTypeCount, error) {
		var rows []*types.EventTypeCount

		err := r.db.NewSelect().
			Model((*types.InteractionEvent)(nil)).
			ColumnExpr("event_type").
			ColumnExpr("COUNT(*) AS count").
			Where("listing_id IN (?)", bun.In(listingIDs)).
			Where("created_at >= ?", since).
			Group("event_type").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to get event totals: %w", err)
		}

		return rows, nil
	})
}

// DailyTypeCounts counts events per type per day across the given listings
// since the window start. Days without events produce no rows.
func (r *EventModel) DailyTypeCounts(
	ctx context.Context, listingIDs []int64, since time.Time,
) ([]*types.EventDateCount, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.EventDateCount, error) {
		var rows []*types.EventDateCount

		err := r.db.NewSelect().
			Model((*types.InteractionEvent)(nil)).
			ColumnExpr("event_type").
			ColumnExpr("date_trunc('day', created_at) AS date").
			ColumnExpr("COUNT(*) AS count").
			Where("listing_id IN (?)", bun.In(listingIDs)).
			Where("created_at >= ?", since).
			Group("event_type").
			GroupExpr("date_trunc('day', created_at)").
			OrderExpr("date ASC").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to get daily event counts: %w", err)
		}

		return rows, nil
	})
}

// TopListingsByViews ranks the given listings by view count descending and
// returns the top limit entries.
func (r *EventModel) TopListingsByViews(
	ctx context.Context, listingIDs []int64, since time.Time, limit int,
) ([]*types.ListingViewCount, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ListingViewCount, error) {
		var rows []*types.ListingViewCount

		err := r.db.NewSelect().
			Model((*types.InteractionEvent)(nil)).
			ColumnExpr("listing_id").
			ColumnExpr("COUNT(*) AS views").
			Where("listing_id IN (?)", bun.In(listingIDs)).
			Where("event_type = ?", enum.EventTypeView).
			Where("created_at >= ?", since).
			Group("listing_id").
			OrderExpr("views DESC").
			Limit(limit).
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to rank listings by views: %w", err)
		}

		return rows, nil
	})
}

// CountsForListings counts the given event types per listing. Used to fetch
// favorite and unlock counts for the already-selected top set only.
func (r *EventModel) CountsForListings(
	ctx context.Context, listingIDs []int64, eventTypes []enum.EventType, since time.Time,
) ([]*types.ListingEventCount, error) {
	if len(listingIDs) == 0 || len(eventTypes) == 0 {
		return nil, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ListingEventCount, error) {
		var rows []*types.ListingEventCount

		err := r.db.NewSelect().
			Model((*types.InteractionEvent)(nil)).
			ColumnExpr("listing_id").
			ColumnExpr("event_type").
			ColumnExpr("COUNT(*) AS count").
			Where("listing_id IN (?)", bun.In(listingIDs)).
			Where("event_type IN (?)", bun.In(eventTypes)).
			Where("created_at >= ?", since).
			Group("listing_id").
			Group("event_type").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to count events per listing: %w", err)
		}

		return rows, nil
	})
}

// ViewerCounts returns distinct and repeat viewer counts for one listing in
// the window. Repeat viewers are the subset with more than one view.
func (r *EventModel) ViewerCounts(
	ctx context.Context, listingID int64, since time.Time,
) (*types.ViewerCounts, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ViewerCounts, error) {
		perViewer := r.db.NewSelect().
			Model((*types.InteractionEvent)(nil)).
			ColumnExpr("user_id").
			ColumnExpr("COUNT(*) AS views").
			Where("listing_id = ?", listingID).
			Where("event_type = ?", enum.EventTypeView).
			Where("created_at >= ?", since).
			Group("user_id")

		var counts types.ViewerCounts

		err := r.db.NewSelect().
			ColumnExpr("COUNT(*) AS unique_viewers").
			ColumnExpr("COUNT(*) FILTER (WHERE views > 1) AS repeat_viewers").
			TableExpr("(?) AS viewers", perViewer).
			Scan(ctx, &counts)
		if err != nil {
			return nil, fmt.Errorf("failed to get viewer counts for listing %d: %w", listingID, err)
		}

		return &counts, nil
	})
}

// DistinctFavoriters counts distinct users with at least one favorite event
// on the listing in the window, without correcting for later unfavorites.
func (r *EventModel) DistinctFavoriters(
	ctx context.Context, listingID int64, since time.Time,
) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		var count int

		err := r.db.NewSelect().
			Model((*types.InteractionEvent)(nil)).
			ColumnExpr("COUNT(DISTINCT user_id)").
			Where("listing_id = ?", listingID).
			Where("event_type = ?", enum.EventTypeFavorite).
			Where("created_at >= ?", since).
			Scan(ctx, &count)
		if err != nil {
			return 0, fmt.Errorf("failed to count favoriters for listing %d: %w", listingID, err)
		}

		return count, nil
	})
}
