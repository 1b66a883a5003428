package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/casavia/engage/internal/database/service"
	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeEventStore keeps appended events in memory and answers the grouped
// queries the way the SQL model would.
type fakeEventStore struct {
	events []*types.InteractionEvent
}

func (f *fakeEventStore) Append(_ context.Context, event *types.InteractionEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventStore) LatestEventTime(
	_ context.Context, userID, listingID int64, eventType enum.EventType,
) (time.Time, bool, error) {
	var (
		latest time.Time
		found  bool
	)

	for _, event := range f.events {
		if event.UserID != userID || event.ListingID != listingID || event.EventType != eventType {
			continue
		}

		if !found || event.CreatedAt.After(latest) {
			latest = event.CreatedAt
			found = true
		}
	}

	return latest, found, nil
}

func (f *fakeEventStore) FavoriteParity(
	_ context.Context, userID, listingID int64,
) (int, int, error) {
	var favorites, unfavorites int

	for _, event := range f.events {
		if event.UserID != userID || event.ListingID != listingID {
			continue
		}

		switch event.EventType {
		case enum.EventTypeFavorite:
			favorites++
		case enum.EventTypeUnfavorite:
			unfavorites++
		default:
		}
	}

	return favorites, unfavorites, nil
}

func (f *fakeEventStore) FavoritedListingIDs(
	_ context.Context, userID int64, limit, offset int,
) ([]int64, error) {
	type pairState struct {
		favorites   int
		unfavorites int
		lastFavored time.Time
	}

	states := make(map[int64]*pairState)

	for _, event := range f.events {
		if event.UserID != userID {
			continue
		}

		state, ok := states[event.ListingID]
		if !ok {
			state = &pairState{}
			states[event.ListingID] = state
		}

		switch event.EventType {
		case enum.EventTypeFavorite:
			state.favorites++

			if event.CreatedAt.After(state.lastFavored) {
				state.lastFavored = event.CreatedAt
			}
		case enum.EventTypeUnfavorite:
			state.unfavorites++
		default:
		}
	}

	var ids []int64

	for id, state := range states {
		if state.favorites > state.unfavorites {
			ids = append(ids, id)
		}
	}

	// Most recently favorited first.
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if states[ids[j]].lastFavored.After(states[ids[i]].lastFavored) {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}

	if offset >= len(ids) {
		return nil, nil
	}

	ids = ids[offset:]
	if len(ids) > limit {
		ids = ids[:limit]
	}

	return ids, nil
}

// countByType counts stored events of one type for a pair.
func (f *fakeEventStore) countByType(userID, listingID int64, eventType enum.EventType) int {
	var count int

	for _, event := range f.events {
		if event.UserID == userID && event.ListingID == listingID && event.EventType == eventType {
			count++
		}
	}

	return count
}

type fakeListingStore struct {
	listings map[int64]*types.Listing
}

func (f *fakeListingStore) GetByID(_ context.Context, listingID int64) (*types.Listing, error) {
	listing, ok := f.listings[listingID]
	if !ok {
		return nil, types.ErrListingNotFound
	}

	return listing, nil
}

func (f *fakeListingStore) GetAvailableByIDs(_ context.Context, listingIDs []int64) ([]*types.Listing, error) {
	var result []*types.Listing

	for _, id := range listingIDs {
		if listing, ok := f.listings[id]; ok && listing.Available() {
			result = append(result, listing)
		}
	}

	return result, nil
}

func setupEngagementTest(t *testing.T) (*service.EngagementService, *fakeEventStore, *fakeListingStore) {
	t.Helper()

	eventStore := &fakeEventStore{}
	listingStore := &fakeListingStore{listings: map[int64]*types.Listing{
		100: {ID: 100, OwnerID: 1, CategoryID: 2, Price: 950, Status: types.ListingStatusAvailable, Title: "Sunny flat"},
		101: {ID: 101, OwnerID: 1, CategoryID: 2, Price: 1200, Status: "delisted", Title: "Old house"},
	}}

	return service.NewEngagement(eventStore, listingStore, zap.NewNop()), eventStore, listingStore
}

func TestRecordEventDebouncesWithinWindow(t *testing.T) {
	t.Parallel()

	svc, eventStore, _ := setupEngagementTest(t)
	ctx := t.Context()

	require.NoError(t, svc.RecordEvent(ctx, 7, 100, enum.EventTypeImpression, nil))
	require.NoError(t, svc.RecordEvent(ctx, 7, 100, enum.EventTypeImpression, nil))

	assert.Equal(t, 1, eventStore.countByType(7, 100, enum.EventTypeImpression))
}

func TestRecordEventRecordsAfterWindow(t *testing.T) {
	t.Parallel()

	svc, eventStore, _ := setupEngagementTest(t)
	ctx := t.Context()

	require.NoError(t, svc.RecordEvent(ctx, 7, 100, enum.EventTypeImpression, nil))

	// Age the stored event past the 30 second impression window.
	eventStore.events[0].CreatedAt = time.Now().UTC().Add(-31 * time.Second)

	require.NoError(t, svc.RecordEvent(ctx, 7, 100, enum.EventTypeImpression, nil))
	assert.Equal(t, 2, eventStore.countByType(7, 100, enum.EventTypeImpression))
}

func TestRecordEventDebouncePerPairAndType(t *testing.T) {
	t.Parallel()

	svc, eventStore, _ := setupEngagementTest(t)
	ctx := t.Context()

	require.NoError(t, svc.RecordEvent(ctx, 7, 100, enum.EventTypeImpression, nil))

	// Same window, but different listing, different user and different type
	// all record independently.
	require.NoError(t, svc.RecordEvent(ctx, 7, 101, enum.EventTypeImpression, nil))
	require.NoError(t, svc.RecordEvent(ctx, 8, 100, enum.EventTypeImpression, nil))
	require.NoError(t, svc.RecordEvent(ctx, 7, 100, enum.EventTypeView, nil))

	assert.Equal(t, 1, eventStore.countByType(7, 100, enum.EventTypeImpression))
	assert.Equal(t, 1, eventStore.countByType(7, 101, enum.EventTypeImpression))
	assert.Equal(t, 1, eventStore.countByType(8, 100, enum.EventTypeImpression))
	assert.Equal(t, 1, eventStore.countByType(7, 100, enum.EventTypeView))
}

func TestRecordEventSharesNeverDebounced(t *testing.T) {
	t.Parallel()

	svc, eventStore, _ := setupEngagementTest(t)
	ctx := t.Context()

	for range 3 {
		require.NoError(t, svc.RecordEvent(ctx, 7, 100, enum.EventTypeShare, nil))
	}

	assert.Equal(t, 3, eventStore.countByType(7, 100, enum.EventTypeShare))
}

func TestRecordUnlockNeverDebounced(t *testing.T) {
	t.Parallel()

	svc, eventStore, _ := setupEngagementTest(t)
	ctx := t.Context()

	require.NoError(t, svc.RecordUnlock(ctx, 7, 100))
	require.NoError(t, svc.RecordUnlock(ctx, 7, 100))

	assert.Equal(t, 2, eventStore.countByType(7, 100, enum.EventTypeUnlock))
}

func TestToggleFavoriteAlternatesState(t *testing.T) {
	t.Parallel()

	svc, eventStore, _ := setupEngagementTest(t)
	ctx := t.Context()

	favorited, err := svc.ToggleFavorite(ctx, 7, 100)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = svc.ToggleFavorite(ctx, 7, 100)
	require.NoError(t, err)
	assert.False(t, favorited)

	favorited, err = svc.ToggleFavorite(ctx, 7, 100)
	require.NoError(t, err)
	assert.True(t, favorited)

	assert.Equal(t, 2, eventStore.countByType(7, 100, enum.EventTypeFavorite))
	assert.Equal(t, 1, eventStore.countByType(7, 100, enum.EventTypeUnfavorite))
}

func TestToggleFavoriteUnknownListing(t *testing.T) {
	t.Parallel()

	svc, eventStore, _ := setupEngagementTest(t)
	ctx := t.Context()

	_, err := svc.ToggleFavorite(ctx, 7, 999)
	require.ErrorIs(t, err, types.ErrListingNotFound)
	assert.Empty(t, eventStore.events)
}

func TestListFavoritesDropsUnavailableListings(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupEngagementTest(t)
	ctx := t.Context()

	// Favorite the available listing first, then the delisted one.
	_, err := svc.ToggleFavorite(ctx, 7, 100)
	require.NoError(t, err)

	_, err = svc.ToggleFavorite(ctx, 7, 101)
	require.NoError(t, err)

	listings, err := svc.ListFavorites(ctx, 7, 20, 0)
	require.NoError(t, err)

	require.Len(t, listings, 1)
	assert.Equal(t, int64(100), listings[0].ID)
}

func TestListFavoritesExcludesUnfavorited(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupEngagementTest(t)
	ctx := t.Context()

	_, err := svc.ToggleFavorite(ctx, 7, 100)
	require.NoError(t, err)

	_, err = svc.ToggleFavorite(ctx, 7, 100)
	require.NoError(t, err)

	listings, err := svc.ListFavorites(ctx, 7, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, listings)
}
