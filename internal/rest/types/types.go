package types

import "time"

// TrackResponse acknowledges an interaction event. Debounced duplicates
// still acknowledge with success.
type TrackResponse struct {
	Success bool `json:"success"`
}

// FavoriteToggleResponse reports the favorite state after a toggle.
type FavoriteToggleResponse struct {
	ListingID int64  `json:"listingId"`
	Favorited bool   `json:"favorited"`
	Message   string `json:"message"`
}

// Listing is the public listing shape returned to engagement endpoints.
type Listing struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"categoryId"`
	AreaID     int64     `json:"areaId,omitempty"`
	Price      float64   `json:"price"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FavoritesResponse is the paginated list of a user's favorited listings.
type FavoritesResponse struct {
	Listings []*Listing `json:"listings"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}

// RecommendationsResponse carries a recommendation set and how it was
// produced ("latest" or "personalized").
type RecommendationsResponse struct {
	ListingIDs []int64 `json:"listingIds"`
	Source     string  `json:"source"`
}
