package service

import (
	"context"
	"fmt"
	"time"

	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/database/types/enum"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// debounceWindows maps each event type to its suppression window. Types
// absent from the map (share, favorite, unfavorite, unlock) are never
// time-debounced.
var debounceWindows = map[enum.EventType]time.Duration{
	enum.EventTypeImpression:   30 * time.Second,
	enum.EventTypeView:         300 * time.Second,
	enum.EventTypeContactClick: 60 * time.Second,
	enum.EventTypePhoneClick:   60 * time.Second,
}

// EngagementEventStore is the slice of the event model the engagement
// service consumes.
type EngagementEventStore interface {
	Append(ctx context.Context, event *types.InteractionEvent) error
	LatestEventTime(ctx context.Context, userID, listingID int64, eventType enum.EventType) (time.Time, bool, error)
	FavoriteParity(ctx context.Context, userID, listingID int64) (favorites, unfavorites int, err error)
	FavoritedListingIDs(ctx context.Context, userID int64, limit, offset int) ([]int64, error)
}

// EngagementListingStore is the slice of the listing model the engagement
// service consumes.
type EngagementListingStore interface {
	GetByID(ctx context.Context, listingID int64) (*types.Listing, error)
	GetAvailableByIDs(ctx context.Context, listingIDs []int64) ([]*types.Listing, error)
}

// EngagementService records interaction events with per-type debounce and
// derives favorite state from the event log.
type EngagementService struct {
	event   EngagementEventStore
	listing EngagementListingStore
	logger  *zap.Logger
}

// NewEngagement creates a new engagement tracking service.
func NewEngagement(
	event EngagementEventStore, listing EngagementListingStore, logger *zap.Logger,
) *EngagementService {
	return &EngagementService{
		event:   event,
		listing: listing,
		logger:  logger.Named("engagement_service"),
	}
}

// RecordEvent appends an interaction event unless an identical-type event
// from the same (user, listing) pair falls inside the type's debounce
// window, in which case the call is a silent no-op. Callers cannot tell a
// suppressed call from a recorded one; only store failures are surfaced.
//
// The window check and the append are not held under a lock: two racing
// requests can both pass the check and store one duplicate. That is an
// accepted relaxation rather than a bug.
func (s *EngagementService) RecordEvent(
	ctx context.Context, userID, listingID int64, eventType enum.EventType, metadata map[string]any,
) error {
	if window, debounced := debounceWindows[eventType]; debounced {
		last, found, err := s.event.LatestEventTime(ctx, userID, listingID, eventType)
		if err != nil {
			return fmt.Errorf("failed to check debounce window: %w", err)
		}

		if found && time.Since(last) < window {
			s.logger.Debug("Suppressed duplicate event",
				zap.Int64("userID", userID),
				zap.Int64("listingID", listingID),
				zap.String("eventType", eventType.String()),
				zap.Duration("window", window))

			return nil
		}
	}

	event := &types.InteractionEvent{
		ID:        uuid.New(),
		UserID:    userID,
		ListingID: listingID,
		EventType: eventType,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.event.Append(ctx, event); err != nil {
		return fmt.Errorf("failed to record %s event: %w", eventType, err)
	}

	return nil
}

// RecordUnlock appends an unlock event. Called by the billing pipeline once
// payment for a listing unlock settles; never debounced.
func (s *EngagementService) RecordUnlock(ctx context.Context, userID, listingID int64) error {
	return s.RecordEvent(ctx, userID, listingID, enum.EventTypeUnlock, nil)
}

// ToggleFavorite flips the user's derived favorite state for a listing by
// appending the opposite-type event, and returns the new state. The state is
// never stored as a flag; it is the parity of favorite vs unfavorite events
// over full history.
//
// Concurrent toggles on the same pair can both read the same parity and
// append the same event type. Accepted relaxation, same as RecordEvent.
func (s *EngagementService) ToggleFavorite(ctx context.Context, userID, listingID int64) (bool, error) {
	if _, err := s.listing.GetByID(ctx, listingID); err != nil {
		return false, err
	}

	favorites, unfavorites, err := s.event.FavoriteParity(ctx, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("failed to derive favorite state: %w", err)
	}

	currentlyFavorited := favorites > unfavorites

	next := enum.EventTypeFavorite
	if currentlyFavorited {
		next = enum.EventTypeUnfavorite
	}

	event := &types.InteractionEvent{
		ID:        uuid.New(),
		UserID:    userID,
		ListingID: listingID,
		EventType: next,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.event.Append(ctx, event); err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	return !currentlyFavorited, nil
}

// ListFavorites returns the user's currently favorited listings, most
// recently favorited first, restricted to available listings. Listings that
// went off-market after being favorited are dropped from the page rather
// than backfilled.
func (s *EngagementService) ListFavorites(
	ctx context.Context, userID int64, limit, offset int,
) ([]*types.Listing, error) {
	ids, err := s.event.FavoritedListingIDs(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	if len(ids) == 0 {
		return []*types.Listing{}, nil
	}

	listings, err := s.listing.GetAvailableByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorited listings: %w", err)
	}

	// Restore the most-recently-favorited order from the grouped query.
	byID := make(map[int64]*types.Listing, len(listings))
	for _, listing := range listings {
		byID[listing.ID] = listing
	}

	ordered := make([]*types.Listing, 0, len(listings))

	for _, id := range ids {
		if listing, ok := byID[id]; ok {
			ordered = append(ordered, listing)
		}
	}

	return ordered, nil
}
