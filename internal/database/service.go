package database

import (
	"github.com/casavia/engage/internal/database/service"
	"go.uber.org/zap"
)

// Service provides access to all business logic services backed purely by
// the database. The recommendation service is wired separately because it
// also depends on the Redis cache.
type Service struct {
	engagement *service.EngagementService
	analytics  *service.AnalyticsService
}

// NewService creates a new service instance with all database-only services.
func NewService(repository *Repository, logger *zap.Logger) *Service {
	eventModel := repository.Event()
	listingModel := repository.Listing()

	return &Service{
		engagement: service.NewEngagement(eventModel, listingModel, logger),
		analytics:  service.NewAnalytics(eventModel, listingModel, logger),
	}
}

// Engagement returns the engagement tracking service.
func (s *Service) Engagement() *service.EngagementService {
	return s.engagement
}

// Analytics returns the owner analytics service.
func (s *Service) Analytics() *service.AnalyticsService {
	return s.analytics
}
