// Package rest exposes the engagement HTTP API.
package rest

import (
	"net/http"

	"github.com/casavia/engage/internal/database"
	"github.com/casavia/engage/internal/database/service"
	"github.com/casavia/engage/internal/rest/handler"
	"github.com/casavia/engage/internal/rest/middleware/auth"
	"github.com/klauspost/compress/gzhttp"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	trackHandler          *handler.TrackHandler
	favoriteHandler       *handler.FavoriteHandler
	analyticsHandler      *handler.AnalyticsHandler
	recommendationHandler *handler.RecommendationHandler
}

// NewServer creates a new REST API server.
func NewServer(
	db database.Client, recommendations *service.RecommendationService, logger *zap.Logger,
) http.Handler {
	server := &Server{
		trackHandler:          handler.NewTrackHandler(db, logger),
		favoriteHandler:       handler.NewFavoriteHandler(db, logger),
		analyticsHandler:      handler.NewAnalyticsHandler(db, logger),
		recommendationHandler: handler.NewRecommendationHandler(recommendations, logger),
	}

	authMiddleware := auth.New(logger)

	router := bunrouter.New()

	router.Use(authMiddleware.AsRESTMiddleware).WithGroup("/v1", func(g *bunrouter.Group) {
		g.POST("/listings/:id/impression", server.trackHandler.TrackImpression)
		g.POST("/listings/:id/view", server.trackHandler.TrackView)
		g.POST("/listings/:id/share", server.trackHandler.TrackShare)
		g.POST("/listings/:id/contact-click", server.trackHandler.TrackContactClick)
		g.POST("/listings/:id/phone-click", server.trackHandler.TrackPhoneClick)
		g.POST("/listings/:id/favorite", server.favoriteHandler.ToggleFavorite)
		g.GET("/favorites", server.favoriteHandler.ListFavorites)
		g.GET("/analytics/overview", server.analyticsHandler.GetOverview)
		g.GET("/analytics/listings/:id", server.analyticsHandler.GetListingDetail)
		g.GET("/recommendations", server.recommendationHandler.GetRecommendations)
	})

	// Unauthenticated liveness probe
	router.GET("/health", func(w http.ResponseWriter, _ bunrouter.Request) error {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))

		return nil
	})

	return gzhttp.GzipHandler(router)
}
