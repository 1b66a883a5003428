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

// fakeAnalyticsEventStore serves canned aggregation rows.
type fakeAnalyticsEventStore struct {
	totals      []*types.EventTypeCount
	daily       []*types.EventDateCount
	topViews    []*types.ListingViewCount
	counts      []*types.ListingEventCount
	viewers     *types.ViewerCounts
	favoriters  int
	lastSince   time.Time
	lastListing []int64
}

func (f *fakeAnalyticsEventStore) TotalsByType(
	_ context.Context, listingIDs []int64, since time.Time,
) ([]*types.EventTypeCount, error) {
	f.lastListing = listingIDs
	f.lastSince = since

	return f.totals, nil
}

func (f *fakeAnalyticsEventStore) DailyTypeCounts(
	_ context.Context, _ []int64, _ time.Time,
) ([]*types.EventDateCount, error) {
	return f.daily, nil
}

func (f *fakeAnalyticsEventStore) TopListingsByViews(
	_ context.Context, _ []int64, _ time.Time, limit int,
) ([]*types.ListingViewCount, error) {
	if len(f.topViews) > limit {
		return f.topViews[:limit], nil
	}

	return f.topViews, nil
}

func (f *fakeAnalyticsEventStore) CountsForListings(
	_ context.Context, _ []int64, _ []enum.EventType, _ time.Time,
) ([]*types.ListingEventCount, error) {
	return f.counts, nil
}

func (f *fakeAnalyticsEventStore) ViewerCounts(
	_ context.Context, _ int64, _ time.Time,
) (*types.ViewerCounts, error) {
	return f.viewers, nil
}

func (f *fakeAnalyticsEventStore) DistinctFavoriters(
	_ context.Context, _ int64, _ time.Time,
) (int, error) {
	return f.favoriters, nil
}

type fakeAnalyticsListingStore struct {
	listings map[int64]*types.Listing
	byOwner  map[int64][]int64
}

func (f *fakeAnalyticsListingStore) GetByID(_ context.Context, listingID int64) (*types.Listing, error) {
	listing, ok := f.listings[listingID]
	if !ok {
		return nil, types.ErrListingNotFound
	}

	return listing, nil
}

func (f *fakeAnalyticsListingStore) GetByIDs(_ context.Context, listingIDs []int64) ([]*types.Listing, error) {
	var result []*types.Listing

	for _, id := range listingIDs {
		if listing, ok := f.listings[id]; ok {
			result = append(result, listing)
		}
	}

	return result, nil
}

func (f *fakeAnalyticsListingStore) IDsByOwner(_ context.Context, ownerID int64) ([]int64, error) {
	return f.byOwner[ownerID], nil
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want enum.AnalyticsPeriod
	}{
		{name: "seven days", code: "7d", want: enum.AnalyticsPeriod7D},
		{name: "thirty days", code: "30d", want: enum.AnalyticsPeriod30D},
		{name: "ninety days", code: "90d", want: enum.AnalyticsPeriod90D},
		{name: "empty defaults", code: "", want: enum.AnalyticsPeriod30D},
		{name: "unknown defaults", code: "365d", want: enum.AnalyticsPeriod30D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, service.ParsePeriod(tt.code))
		})
	}
}

func TestOverviewNoListings(t *testing.T) {
	t.Parallel()

	eventStore := &fakeAnalyticsEventStore{}
	listingStore := &fakeAnalyticsListingStore{byOwner: map[int64][]int64{}}
	svc := service.NewAnalytics(eventStore, listingStore, zap.NewNop())

	overview, err := svc.Overview(t.Context(), 1, enum.AnalyticsPeriod30D)
	require.NoError(t, err)

	assert.Equal(t, "30d", overview.Period)
	assert.Equal(t, 0, overview.Totals.Impressions)
	assert.InDelta(t, 0.0, overview.Totals.ConversionRate, 0.001)
	assert.Empty(t, overview.TopListings)

	// Trends carry every event type as an empty series.
	require.Len(t, overview.Trends, len(enum.EventTypeValues()))
	assert.Empty(t, overview.Trends["view"])

	// The event log was never queried.
	assert.Nil(t, eventStore.lastListing)
}

func TestOverviewTotalsAndRates(t *testing.T) {
	t.Parallel()

	eventStore := &fakeAnalyticsEventStore{
		totals: []*types.EventTypeCount{
			{EventType: enum.EventTypeImpression, Count: 200},
			{EventType: enum.EventTypeView, Count: 60},
			{EventType: enum.EventTypeFavorite, Count: 7},
			{EventType: enum.EventTypeShare, Count: 2},
			{EventType: enum.EventTypeContactClick, Count: 3},
			{EventType: enum.EventTypePhoneClick, Count: 1},
			{EventType: enum.EventTypeUnlock, Count: 4},
		},
	}
	listingStore := &fakeAnalyticsListingStore{
		byOwner: map[int64][]int64{1: {100, 101}},
	}
	svc := service.NewAnalytics(eventStore, listingStore, zap.NewNop())

	overview, err := svc.Overview(t.Context(), 1, enum.AnalyticsPeriod7D)
	require.NoError(t, err)

	assert.Equal(t, 200, overview.Totals.Impressions)
	assert.Equal(t, 60, overview.Totals.Views)
	assert.Equal(t, 4, overview.Totals.Unlocks)

	// conversion = 4/60*100, engagement = (7+2+3)/200*100
	assert.InDelta(t, 6.67, overview.Totals.ConversionRate, 0.001)
	assert.InDelta(t, 6.0, overview.Totals.EngagementRate, 0.001)

	// Window start honors the selected period.
	expectedSince := time.Now().UTC().AddDate(0, 0, -7)
	assert.WithinDuration(t, expectedSince, eventStore.lastSince, time.Minute)
}

func TestOverviewRatesWithZeroDenominators(t *testing.T) {
	t.Parallel()

	eventStore := &fakeAnalyticsEventStore{
		totals: []*types.EventTypeCount{
			{EventType: enum.EventTypeFavorite, Count: 5},
			{EventType: enum.EventTypeUnlock, Count: 3},
		},
	}
	listingStore := &fakeAnalyticsListingStore{
		byOwner: map[int64][]int64{1: {100}},
	}
	svc := service.NewAnalytics(eventStore, listingStore, zap.NewNop())

	overview, err := svc.Overview(t.Context(), 1, enum.AnalyticsPeriod30D)
	require.NoError(t, err)

	// Zero views and impressions divide by one instead of exploding.
	assert.InDelta(t, 300.0, overview.Totals.ConversionRate, 0.001)
	assert.InDelta(t, 500.0, overview.Totals.EngagementRate, 0.001)
}

func TestOverviewTopListings(t *testing.T) {
	t.Parallel()

	eventStore := &fakeAnalyticsEventStore{
		topViews: []*types.ListingViewCount{
			{ListingID: 100, Views: 40},
			{ListingID: 101, Views: 10},
			{ListingID: 102, Views: 5},
		},
		counts: []*types.ListingEventCount{
			{ListingID: 100, EventType: enum.EventTypeFavorite, Count: 6},
			{ListingID: 100, EventType: enum.EventTypeUnlock, Count: 2},
			{ListingID: 101, EventType: enum.EventTypeUnlock, Count: 1},
		},
	}
	listingStore := &fakeAnalyticsListingStore{
		listings: map[int64]*types.Listing{
			100: {ID: 100, OwnerID: 1, Title: "Sunny flat"},
			101: {ID: 101, OwnerID: 1, Title: "Old house"},
			// 102 is missing from the listing store.
		},
		byOwner: map[int64][]int64{1: {100, 101, 102}},
	}
	svc := service.NewAnalytics(eventStore, listingStore, zap.NewNop())

	overview, err := svc.Overview(t.Context(), 1, enum.AnalyticsPeriod30D)
	require.NoError(t, err)

	require.Len(t, overview.TopListings, 2)

	assert.Equal(t, int64(100), overview.TopListings[0].ListingID)
	assert.Equal(t, "Sunny flat", overview.TopListings[0].Title)
	assert.Equal(t, 40, overview.TopListings[0].Views)
	assert.Equal(t, 6, overview.TopListings[0].Favorites)
	assert.Equal(t, 2, overview.TopListings[0].Unlocks)
	assert.InDelta(t, 5.0, overview.TopListings[0].ConversionRate, 0.001)

	assert.Equal(t, int64(101), overview.TopListings[1].ListingID)
	assert.InDelta(t, 10.0, overview.TopListings[1].ConversionRate, 0.001)
}

func TestDetailRequiresOwnership(t *testing.T) {
	t.Parallel()

	eventStore := &fakeAnalyticsEventStore{viewers: &types.ViewerCounts{}}
	listingStore := &fakeAnalyticsListingStore{
		listings: map[int64]*types.Listing{
			100: {ID: 100, OwnerID: 1, Title: "Sunny flat"},
		},
	}
	svc := service.NewAnalytics(eventStore, listingStore, zap.NewNop())

	_, err := svc.Detail(t.Context(), 2, 100, enum.AnalyticsPeriod30D)
	require.ErrorIs(t, err, types.ErrNotListingOwner)

	_, err = svc.Detail(t.Context(), 1, 999, enum.AnalyticsPeriod30D)
	require.ErrorIs(t, err, types.ErrListingNotFound)
}

func TestDetailBuildsFunnelDailyAndAudience(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	eventStore := &fakeAnalyticsEventStore{
		totals: []*types.EventTypeCount{
			{EventType: enum.EventTypeImpression, Count: 100},
			{EventType: enum.EventTypeView, Count: 40},
			{EventType: enum.EventTypeContactClick, Count: 6},
			{EventType: enum.EventTypePhoneClick, Count: 2},
			{EventType: enum.EventTypeUnlock, Count: 4},
		},
		daily: []*types.EventDateCount{
			{EventType: enum.EventTypeImpression, Date: day1, Count: 70},
			{EventType: enum.EventTypeView, Date: day1, Count: 30},
			{EventType: enum.EventTypeImpression, Date: day2, Count: 30},
			{EventType: enum.EventTypeUnlock, Date: day2, Count: 4},
		},
		viewers:    &types.ViewerCounts{UniqueViewers: 25, RepeatViewers: 8},
		favoriters: 5,
	}
	listingStore := &fakeAnalyticsListingStore{
		listings: map[int64]*types.Listing{
			100: {ID: 100, OwnerID: 1, Title: "Sunny flat"},
		},
	}
	svc := service.NewAnalytics(eventStore, listingStore, zap.NewNop())

	detail, err := svc.Detail(t.Context(), 1, 100, enum.AnalyticsPeriod90D)
	require.NoError(t, err)

	assert.Equal(t, "90d", detail.Period)
	assert.Equal(t, int64(100), detail.Listing.ID)

	// Funnel merges both contact types into one stage.
	assert.Equal(t, 8, detail.Funnel.Contacts)
	assert.InDelta(t, 40.0, detail.Funnel.ImpressionToView, 0.001)
	assert.InDelta(t, 20.0, detail.Funnel.ViewToContact, 0.001)
	assert.InDelta(t, 10.0, detail.Funnel.ViewToUnlock, 0.001)

	// Daily breakdown pivots one row per active date, zero-filled.
	require.Len(t, detail.Daily, 2)
	assert.Equal(t, "2026-04-01", detail.Daily[0].Date)
	assert.Equal(t, 70, detail.Daily[0].Impressions)
	assert.Equal(t, 30, detail.Daily[0].Views)
	assert.Equal(t, 0, detail.Daily[0].Unlocks)
	assert.Equal(t, "2026-04-02", detail.Daily[1].Date)
	assert.Equal(t, 4, detail.Daily[1].Unlocks)

	assert.Equal(t, 25, detail.Audience.UniqueViewers)
	assert.Equal(t, 8, detail.Audience.RepeatViewers)
	assert.Equal(t, 5, detail.Audience.FavoritedBy)
}
