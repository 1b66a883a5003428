package convert

import (
	"github.com/casavia/engage/internal/database/types"
	restTypes "github.com/casavia/engage/internal/rest/types"
)

// Listing converts a database listing to its REST API shape.
func Listing(listing *types.Listing) *restTypes.Listing {
	if listing == nil {
		return nil
	}

	return &restTypes.Listing{
		ID:         listing.ID,
		CategoryID: listing.CategoryID,
		AreaID:     listing.AreaID,
		Price:      listing.Price,
		Title:      listing.Title,
		CreatedAt:  listing.CreatedAt,
	}
}

// Listings converts a slice of database listings.
func Listings(listings []*types.Listing) []*restTypes.Listing {
	result := make([]*restTypes.Listing, len(listings))
	for i, listing := range listings {
		result[i] = Listing(listing)
	}

	return result
}
