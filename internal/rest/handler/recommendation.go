package handler

import (
	"net/http"

	"github.com/casavia/engage/internal/database/service"
	"github.com/casavia/engage/internal/rest/middleware/auth"
	restTypes "github.com/casavia/engage/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// RecommendationHandler handles the personalized recommendations endpoint.
type RecommendationHandler struct {
	recommendations *service.RecommendationService
	logger          *zap.Logger
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(
	recommendations *service.RecommendationService, logger *zap.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		logger:          logger,
	}
}

// GetRecommendations returns up to ten listing IDs for the caller along
// with the strategy that produced them.
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, req bunrouter.Request) error {
	userID, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	set, err := h.recommendations.Recommend(req.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build recommendations", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.RecommendationsResponse{
		ListingIDs: set.ListingIDs,
		Source:     set.Source.String(),
	})
}
