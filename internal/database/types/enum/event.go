package enum

// EventType represents the kind of interaction a user performed against a listing.
//
//go:generate go tool enumer -type=EventType -trimprefix=EventType -transform=snake
type EventType int

const (
	EventTypeImpression EventType = iota
	EventTypeView
	EventTypeFavorite
	EventTypeUnfavorite
	EventTypeShare
	EventTypeContactClick
	EventTypePhoneClick
	EventTypeUnlock
)
