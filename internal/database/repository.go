package database

import (
	"github.com/casavia/engage/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	event   *models.EventModel
	listing *models.ListingModel
	unlock  *models.UnlockModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		event:   models.NewEvent(db, logger),
		listing: models.NewListing(db, logger),
		unlock:  models.NewUnlock(db, logger),
	}
}

// Event returns the interaction event model repository.
func (r *Repository) Event() *models.EventModel {
	return r.event
}

// Listing returns the listing model repository.
func (r *Repository) Listing() *models.ListingModel {
	return r.listing
}

// Unlock returns the listing unlock model repository.
func (r *Repository) Unlock() *models.UnlockModel {
	return r.unlock
}
