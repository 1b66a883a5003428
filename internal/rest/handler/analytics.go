package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/casavia/engage/internal/database"
	"github.com/casavia/engage/internal/database/service"
	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/rest/middleware/auth"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// AnalyticsHandler handles owner dashboard endpoints. Aggregates are
// returned as computed, so the shapes under database/types are the wire
// shapes too.
type AnalyticsHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(db database.Client, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		db:     db,
		logger: logger,
	}
}

// GetOverview returns the caller's cross-listing engagement dashboard.
// The period query parameter accepts 7d, 30d and 90d; anything else means 30d.
func (h *AnalyticsHandler) GetOverview(w http.ResponseWriter, req bunrouter.Request) error {
	userID, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	period := service.ParsePeriod(req.URL.Query().Get("period"))

	overview, err := h.db.Service().Analytics().Overview(req.Context(), userID, period)
	if err != nil {
		h.logger.Error("Failed to build analytics overview", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, overview)
}

// GetListingDetail returns the per-listing dashboard for a listing the
// caller owns.
func (h *AnalyticsHandler) GetListingDetail(w http.ResponseWriter, req bunrouter.Request) error {
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

	period := service.ParsePeriod(req.URL.Query().Get("period"))

	detail, err := h.db.Service().Analytics().Detail(req.Context(), userID, listingID, period)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrListingNotFound):
			http.Error(w, "Listing not found", http.StatusNotFound)
		case errors.Is(err, types.ErrNotListingOwner):
			http.Error(w, "Forbidden", http.StatusForbidden)
		default:
			h.logger.Error("Failed to build listing analytics",
				zap.Int64("listingID", listingID),
				zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return nil
	}

	return bunrouter.JSON(w, detail)
}
