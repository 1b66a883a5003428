package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/casavia/engage/internal/database"
	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/rest/convert"
	"github.com/casavia/engage/internal/rest/middleware/auth"
	restTypes "github.com/casavia/engage/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

const (
	defaultFavoritesLimit = 20
	maxFavoritesLimit     = 100
)

// FavoriteHandler handles favorite toggle and listing endpoints.
type FavoriteHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(db database.Client, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		db:     db,
		logger: logger,
	}
}

// ToggleFavorite flips the caller's favorite state for a listing and
// returns the new state.
func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, req bunrouter.Request) error {
	userID, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	listingID, err := strconv.ParseInt(req.Param("id"), 10, 64)
	if err != nil || listingID <= 0 {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return nil
	}

	favorited, err := h.db.Service().Engagement().ToggleFavorite(req.Context(), userID, listingID)
	if err != nil {
		if errors.Is(err, types.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to toggle favorite",
			zap.Int64("listingID", listingID),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	message := "Listing removed from favorites"
	if favorited {
		message = "Listing added to favorites"
	}

	return bunrouter.JSON(w, restTypes.FavoriteToggleResponse{
		ListingID: listingID,
		Favorited: favorited,
		Message:   message,
	})
}

// ListFavorites returns the caller's currently favorited listings, most
// recently favorited first.
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, req bunrouter.Request) error {
	userID, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	limit := queryInt(req, "limit", defaultFavoritesLimit)
	if limit < 1 || limit > maxFavoritesLimit {
		limit = defaultFavoritesLimit
	}

	offset := queryInt(req, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	listings, err := h.db.Service().Engagement().ListFavorites(req.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list favorites", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.FavoritesResponse{
		Listings: convert.Listings(listings),
		Limit:    limit,
		Offset:   offset,
	})
}

// queryInt reads an integer query parameter, falling back on absent or
// malformed values.
func queryInt(req bunrouter.Request, name string, fallback int) int {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
