package types

import "github.com/casavia/engage/internal/database/types/enum"

// RecommendationSet is the cached output of one recommendation request.
type RecommendationSet struct {
	ListingIDs []int64                   `json:"listingIds"`
	Source     enum.RecommendationSource `json:"source"`
}

// PreferenceProfile is derived from a user's most recent successful unlocks.
// RegionIDs is resolved from AreaIDs through the area table after the pure
// derivation step.
type PreferenceProfile struct {
	ExcludedIDs []int64
	CategoryIDs []int64
	AreaIDs     []int64
	RegionIDs   []int64
	MinPrice    float64
	MaxPrice    float64
}
