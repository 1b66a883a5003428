package types

// EngagementTotals aggregates per-type event counts over a window, with the
// two derived rates. Rates are percentages in [0,100] rounded to two
// decimals; a zero denominator yields 0, never NaN or infinity.
type EngagementTotals struct {
	Impressions    int     `json:"impressions"`
	Views          int     `json:"views"`
	Favorites      int     `json:"favorites"`
	Shares         int     `json:"shares"`
	ContactClicks  int     `json:"contactClicks"`
	PhoneClicks    int     `json:"phoneClicks"`
	Unlocks        int     `json:"unlocks"`
	ConversionRate float64 `json:"conversionRate"` // unlocks / max(views,1)
	EngagementRate float64 `json:"engagementRate"` // (favorites+shares+contact clicks) / max(impressions,1)
}

// TrendPoint is one day of activity for one event type. Days with no
// activity are not emitted.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyBreakdownRow is a single-listing day pivoted across all metrics.
// Only days with at least one event of any type appear; within a row,
// metrics with no events that day are zero.
type DailyBreakdownRow struct {
	Date          string `json:"date"`
	Impressions   int    `json:"impressions"`
	Views         int    `json:"views"`
	Favorites     int    `json:"favorites"`
	Shares        int    `json:"shares"`
	ContactClicks int    `json:"contactClicks"`
	PhoneClicks   int    `json:"phoneClicks"`
	Unlocks       int    `json:"unlocks"`
}

// ConversionFunnel is the ordered impression, view, contact, unlock funnel
// for a single listing. Contacts combine contact and phone clicks.
type ConversionFunnel struct {
	Impressions      int     `json:"impressions"`
	Views            int     `json:"views"`
	Contacts         int     `json:"contacts"`
	Unlocks          int     `json:"unlocks"`
	ImpressionToView float64 `json:"impressionToView"`
	ViewToContact    float64 `json:"viewToContact"`
	ViewToUnlock     float64 `json:"viewToUnlock"`
}

// TopListing is one entry of the view-ranked top listings.
type TopListing struct {
	ListingID      int64   `json:"listingId"`
	Title          string  `json:"title"`
	Views          int     `json:"views"`
	Favorites      int     `json:"favorites"`
	Unlocks        int     `json:"unlocks"`
	ConversionRate float64 `json:"conversionRate"`
}

// AudienceMetrics describes who engaged with a single listing in a window.
// FavoritedBy counts distinct users with at least one favorite event; it is
// deliberately not parity-corrected against unfavorites.
type AudienceMetrics struct {
	UniqueViewers int `json:"uniqueViewers"`
	RepeatViewers int `json:"repeatViewers"`
	FavoritedBy   int `json:"favoritedBy"`
}

// AnalyticsOverview is the multi-listing dashboard for one owner.
type AnalyticsOverview struct {
	Period      string                  `json:"period"`
	Totals      *EngagementTotals       `json:"totals"`
	Trends      map[string][]TrendPoint `json:"trends"`
	TopListings []*TopListing           `json:"topListings"`
}

// AnalyticsDetail is the single-listing dashboard.
type AnalyticsDetail struct {
	Period   string               `json:"period"`
	Listing  *Listing             `json:"listing"`
	Totals   *EngagementTotals    `json:"totals"`
	Daily    []*DailyBreakdownRow `json:"daily"`
	Funnel   *ConversionFunnel    `json:"funnel"`
	Audience *AudienceMetrics     `json:"audience"`
}
