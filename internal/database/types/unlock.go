package types

import (
	"time"

	"github.com/uptrace/bun"
)

// UnlockStatusSuccess is the status the billing service writes once payment
// for a listing unlock has settled. Only successful unlocks feed the
// recommendation profile.
const UnlockStatusSuccess = "success"

// ListingUnlock mirrors the billing service's unlock records. Written by the
// payment pipeline; this subsystem has read-only access.
type ListingUnlock struct {
	bun.BaseModel `bun:"table:listing_unlocks"`

	ID        int64     `bun:",pk,autoincrement" json:"id"`
	UserID    int64     `bun:",notnull"          json:"userId"`
	ListingID int64     `bun:",notnull"          json:"listingId"`
	Status    string    `bun:",notnull"          json:"status"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
}
