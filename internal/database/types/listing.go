package types

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

var (
	// ErrListingNotFound indicates the referenced listing does not exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrNotListingOwner indicates the caller requested owner analytics for
	// a listing they do not own.
	ErrNotListingOwner = errors.New("caller does not own listing")
)

// ListingStatusAvailable is the status the marketplace service writes for
// listings visible to visitors. This core only ever reads listings.
const ListingStatusAvailable = "available"

// Listing mirrors the marketplace's listing table. Owned and written by the
// listings service; this subsystem has read-only access.
type Listing struct {
	bun.BaseModel `bun:"table:listings"`

	ID         int64     `bun:",pk"       json:"id"`
	OwnerID    int64     `bun:",notnull"  json:"ownerId"`
	CategoryID int64     `bun:",notnull"  json:"categoryId"`
	AreaID     int64     `bun:",nullzero" json:"areaId,omitempty"` // Zero when the owner did not pick an area
	Price      float64   `bun:",notnull"  json:"price"`
	Status     string    `bun:",notnull"  json:"status"`
	Title      string    `bun:",notnull"  json:"title"`
	CreatedAt  time.Time `bun:",notnull"  json:"createdAt"`
}

// Available reports whether the listing is currently visible to visitors.
func (l *Listing) Available() bool {
	return l.Status == ListingStatusAvailable
}

// Area mirrors the marketplace's area table. Each area belongs to a parent
// region, which is what the recommender matches on.
type Area struct {
	bun.BaseModel `bun:"table:areas"`

	ID       int64  `bun:",pk"      json:"id"`
	RegionID int64  `bun:",notnull" json:"regionId"`
	Name     string `bun:",notnull" json:"name"`
}

// ListingMatchQuery describes the personalized listing match: available,
// non-excluded listings where (category preferred AND price in band) OR the
// listing's area belongs to a preferred region.
type ListingMatchQuery struct {
	CategoryIDs []int64
	RegionIDs   []int64
	MinPrice    float64
	MaxPrice    float64
	ExcludeIDs  []int64
	Limit       int
}

// Empty reports whether the query has no matching criteria at all, in which
// case it must match nothing rather than everything.
func (q *ListingMatchQuery) Empty() bool {
	return len(q.CategoryIDs) == 0 && len(q.RegionIDs) == 0
}
