package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/database/types/enum"
	"go.uber.org/zap"
)

// topListingsLimit caps the view-ranked top set in the owner overview.
const topListingsLimit = 5

// dateLayout formats aggregation dates in dashboard responses.
const dateLayout = "2006-01-02"

// AnalyticsEventStore is the slice of the event model the analytics service
// consumes. Every method is a set-oriented grouped query; the service never
// iterates the event log per listing.
type AnalyticsEventStore interface {
	TotalsByType(ctx context.Context, listingIDs []int64, since time.Time) ([]*types.EventTypeCount, error)
	DailyTypeCounts(ctx context.Context, listingIDs []int64, since time.Time) ([]*types.EventDateCount, error)
	TopListingsByViews(ctx context.Context, listingIDs []int64, since time.Time, limit int) ([]*types.ListingViewCount, error)
	CountsForListings(ctx context.Context, listingIDs []int64, eventTypes []enum.EventType, since time.Time) ([]*types.ListingEventCount, error)
	ViewerCounts(ctx context.Context, listingID int64, since time.Time) (*types.ViewerCounts, error)
	DistinctFavoriters(ctx context.Context, listingID int64, since time.Time) (int, error)
}

// AnalyticsListingStore is the slice of the listing model the analytics
// service consumes.
type AnalyticsListingStore interface {
	GetByID(ctx context.Context, listingID int64) (*types.Listing, error)
	GetByIDs(ctx context.Context, listingIDs []int64) ([]*types.Listing, error)
	IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

// AnalyticsService derives owner-facing dashboards from the event log.
type AnalyticsService struct {
	event   AnalyticsEventStore
	listing AnalyticsListingStore
	logger  *zap.Logger
}

// NewAnalytics creates a new analytics service.
func NewAnalytics(
	event AnalyticsEventStore, listing AnalyticsListingStore, logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		event:   event,
		listing: listing,
		logger:  logger.Named("analytics_service"),
	}
}

// ParsePeriod resolves a period code from a request. Unrecognized or empty
// codes fall back to 30 days rather than failing the request.
func ParsePeriod(code string) enum.AnalyticsPeriod {
	period, err := enum.AnalyticsPeriodString(code)
	if err != nil {
		return enum.AnalyticsPeriod30D
	}

	return period
}

// Overview builds the multi-listing dashboard across every listing the
// owner has. An owner with no listings gets all-zero totals and empty
// trends without touching the event log.
func (s *AnalyticsService) Overview(
	ctx context.Context, ownerID int64, period enum.AnalyticsPeriod,
) (*types.AnalyticsOverview, error) {
	overview := &types.AnalyticsOverview{
		Period:      period.String(),
		Totals:      buildTotals(nil),
		Trends:      emptyTrends(),
		TopListings: []*types.TopListing{},
	}

	listingIDs, err := s.listing.IDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner listings: %w", err)
	}

	if len(listingIDs) == 0 {
		return overview, nil
	}

	since := period.WindowStart(time.Now().UTC())

	totalRows, err := s.event.TotalsByType(ctx, listingIDs, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate totals: %w", err)
	}

	overview.Totals = buildTotals(totalRows)

	dailyRows, err := s.event.DailyTypeCounts(ctx, listingIDs, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate trends: %w", err)
	}

	overview.Trends = buildTrends(dailyRows)

	top, err := s.topListings(ctx, listingIDs, since)
	if err != nil {
		return nil, err
	}

	overview.TopListings = top

	return overview, nil
}

// Detail builds the single-listing dashboard. Only the listing's owner may
// see it.
func (s *AnalyticsService) Detail(
	ctx context.Context, callerID, listingID int64, period enum.AnalyticsPeriod,
) (*types.AnalyticsDetail, error) {
	listing, err := s.listing.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != callerID {
		return nil, types.ErrNotListingOwner
	}

	since := period.WindowStart(time.Now().UTC())
	listingIDs := []int64{listingID}

	totalRows, err := s.event.TotalsByType(ctx, listingIDs, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate totals: %w", err)
	}

	totals := buildTotals(totalRows)

	dailyRows, err := s.event.DailyTypeCounts(ctx, listingIDs, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily breakdown: %w", err)
	}

	viewers, err := s.event.ViewerCounts(ctx, listingID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate viewer counts: %w", err)
	}

	favoritedBy, err := s.event.DistinctFavoriters(ctx, listingID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count favoriters: %w", err)
	}

	return &types.AnalyticsDetail{
		Period:  period.String(),
		Listing: listing,
		Totals:  totals,
		Daily:   buildDaily(dailyRows),
		Funnel:  buildFunnel(totals),
		Audience: &types.AudienceMetrics{
			UniqueViewers: viewers.UniqueViewers,
			RepeatViewers: viewers.RepeatViewers,
			FavoritedBy:   favoritedBy,
		},
	}, nil
}

// topListings ranks by views, then fetches favorite/unlock counts and
// listing rows for the selected top set only. Listings missing from the
// listing store are silently skipped.
func (s *AnalyticsService) topListings(
	ctx context.Context, listingIDs []int64, since time.Time,
) ([]*types.TopListing, error) {
	viewRows, err := s.event.TopListingsByViews(ctx, listingIDs, since, topListingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top listings: %w", err)
	}

	if len(viewRows) == 0 {
		return []*types.TopListing{}, nil
	}

	topIDs := make([]int64, len(viewRows))
	for i, row := range viewRows {
		topIDs[i] = row.ListingID
	}

	countRows, err := s.event.CountsForListings(
		ctx, topIDs, []enum.EventType{enum.EventTypeFavorite, enum.EventTypeUnlock}, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count top listing events: %w", err)
	}

	counts := make(map[int64]map[enum.EventType]int, len(topIDs))
	for _, row := range countRows {
		if counts[row.ListingID] == nil {
			counts[row.ListingID] = make(map[enum.EventType]int)
		}

		counts[row.ListingID][row.EventType] = row.Count
	}

	listings, err := s.listing.GetByIDs(ctx, topIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load top listings: %w", err)
	}

	byID := make(map[int64]*types.Listing, len(listings))
	for _, listing := range listings {
		byID[listing.ID] = listing
	}

	top := make([]*types.TopListing, 0, len(viewRows))

	for _, row := range viewRows {
		listing, ok := byID[row.ListingID]
		if !ok {
			continue
		}

		unlocks := counts[row.ListingID][enum.EventTypeUnlock]

		var conversion float64
		if row.Views > 0 {
			conversion = round2(float64(unlocks) / float64(row.Views) * 100)
		}

		top = append(top, &types.TopListing{
			ListingID:      row.ListingID,
			Title:          listing.Title,
			Views:          row.Views,
			Favorites:      counts[row.ListingID][enum.EventTypeFavorite],
			Unlocks:        unlocks,
			ConversionRate: conversion,
		})
	}

	return top, nil
}

// buildTotals pivots grouped per-type counts into the totals struct and
// derives the two rates. A nil row set yields all zeroes.
func buildTotals(rows []*types.EventTypeCount) *types.EngagementTotals {
	totals := &types.EngagementTotals{}

	for _, row := range rows {
		switch row.EventType {
		case enum.EventTypeImpression:
			totals.Impressions = row.Count
		case enum.EventTypeView:
			totals.Views = row.Count
		case enum.EventTypeFavorite:
			totals.Favorites = row.Count
		case enum.EventTypeShare:
			totals.Shares = row.Count
		case enum.EventTypeContactClick:
			totals.ContactClicks = row.Count
		case enum.EventTypePhoneClick:
			totals.PhoneClicks = row.Count
		case enum.EventTypeUnlock:
			totals.Unlocks = row.Count
		case enum.EventTypeUnfavorite:
			// Unfavorites only matter for parity, not dashboard totals.
		}
	}

	totals.ConversionRate = rate(totals.Unlocks, totals.Views)
	totals.EngagementRate = rate(totals.Favorites+totals.Shares+totals.ContactClicks, totals.Impressions)

	return totals
}

// buildTrends groups daily counts per event type. Dates arrive ascending
// from the grouped query; dates without activity are never synthesized.
func buildTrends(rows []*types.EventDateCount) map[string][]types.TrendPoint {
	trends := emptyTrends()

	for _, row := range rows {
		key := row.EventType.String()
		trends[key] = append(trends[key], types.TrendPoint{
			Date:  row.Date.Format(dateLayout),
			Count: row.Count,
		})
	}

	return trends
}

func emptyTrends() map[string][]types.TrendPoint {
	trends := make(map[string][]types.TrendPoint, len(enum.EventTypeValues()))
	for _, eventType := range enum.EventTypeValues() {
		trends[eventType.String()] = []types.TrendPoint{}
	}

	return trends
}

// buildDaily pivots per-type daily counts into one row per active date,
// zero-filled across all seven metrics. Dates with no activity at all get
// no row.
func buildDaily(rows []*types.EventDateCount) []*types.DailyBreakdownRow {
	byDate := make(map[string]*types.DailyBreakdownRow)
	ordered := make([]*types.DailyBreakdownRow, 0)

	for _, row := range rows {
		date := row.Date.Format(dateLayout)

		daily, ok := byDate[date]
		if !ok {
			daily = &types.DailyBreakdownRow{Date: date}
			byDate[date] = daily
			ordered = append(ordered, daily)
		}

		switch row.EventType {
		case enum.EventTypeImpression:
			daily.Impressions = row.Count
		case enum.EventTypeView:
			daily.Views = row.Count
		case enum.EventTypeFavorite:
			daily.Favorites = row.Count
		case enum.EventTypeShare:
			daily.Shares = row.Count
		case enum.EventTypeContactClick:
			daily.ContactClicks = row.Count
		case enum.EventTypePhoneClick:
			daily.PhoneClicks = row.Count
		case enum.EventTypeUnlock:
			daily.Unlocks = row.Count
		case enum.EventTypeUnfavorite:
			// Not a dashboard metric.
		}
	}

	return ordered
}

// buildFunnel derives the impression/view/contact/unlock funnel from
// already-computed totals.
func buildFunnel(totals *types.EngagementTotals) *types.ConversionFunnel {
	contacts := totals.ContactClicks + totals.PhoneClicks

	return &types.ConversionFunnel{
		Impressions:      totals.Impressions,
		Views:            totals.Views,
		Contacts:         contacts,
		Unlocks:          totals.Unlocks,
		ImpressionToView: rate(totals.Views, totals.Impressions),
		ViewToContact:    rate(contacts, totals.Views),
		ViewToUnlock:     rate(totals.Unlocks, totals.Views),
	}
}

// rate computes numerator/max(denominator,1)*100 rounded to two decimals,
// so a zero denominator yields 0 rather than NaN or infinity.
func rate(numerator, denominator int) float64 {
	if denominator < 1 {
		denominator = 1
	}

	return round2(float64(numerator) / float64(denominator) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
