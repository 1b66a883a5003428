package types

import (
	"time"

	"github.com/casavia/engage/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// InteractionEvent is one recorded user action against a listing. Rows are
// append-only; they are never updated or deleted, and every piece of derived
// engagement state (favorite status, analytics, funnels) is a projection
// over them.
type InteractionEvent struct {
	bun.BaseModel `bun:"table:interaction_events"`

	ID        uuid.UUID      `bun:",pk,type:uuid"        json:"id"`
	UserID    int64          `bun:",notnull"             json:"userId"`
	ListingID int64          `bun:",nullzero"            json:"listingId,omitempty"` // Zero for events not tied to a listing
	EventType enum.EventType `bun:"event_type,notnull"   json:"eventType"`
	Metadata  map[string]any `bun:",type:jsonb,nullzero" json:"metadata,omitempty"`
	CreatedAt time.Time      `bun:",notnull"             json:"createdAt"`
}

// EventTypeCount is a grouped per-type count scanned from the event log.
type EventTypeCount struct {
	EventType enum.EventType `bun:"event_type"`
	Count     int            `bun:"count"`
}

// EventDateCount is a grouped per-type, per-day count scanned from the event log.
type EventDateCount struct {
	EventType enum.EventType `bun:"event_type"`
	Date      time.Time      `bun:"date"`
	Count     int            `bun:"count"`
}

// ListingEventCount is a grouped per-listing, per-type count scanned from the event log.
type ListingEventCount struct {
	ListingID int64          `bun:"listing_id"`
	EventType enum.EventType `bun:"event_type"`
	Count     int            `bun:"count"`
}

// ListingViewCount carries a listing's view count within a window.
type ListingViewCount struct {
	ListingID int64 `bun:"listing_id"`
	Views     int   `bun:"views"`
}

// ViewerCounts carries distinct-viewer counts for a single listing.
// RepeatViewers is a subset of UniqueViewers (more than one view each).
type ViewerCounts struct {
	UniqueViewers int `bun:"unique_viewers"`
	RepeatViewers int `bun:"repeat_viewers"`
}
