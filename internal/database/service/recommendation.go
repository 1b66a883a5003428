package service

import (
	"context"
	"fmt"

	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/database/types/enum"
	"go.uber.org/zap"
)

const (
	// recommendationLimit caps every recommendation response.
	recommendationLimit = 10
	// profileUnlockCount is how many recent successful unlocks feed the
	// preference profile.
	profileUnlockCount = 5
	// Price band around the average unlocked price.
	priceBandLower = 0.7
	priceBandUpper = 1.3
)

// RecommendationUnlockStore is the slice of the unlock model the
// recommendation service consumes.
type RecommendationUnlockStore interface {
	RecentSuccessful(ctx context.Context, userID int64, limit int) ([]*types.ListingUnlock, error)
}

// RecommendationListingStore is the slice of the listing model the
// recommendation service consumes.
type RecommendationListingStore interface {
	GetByIDs(ctx context.Context, listingIDs []int64) ([]*types.Listing, error)
	Latest(ctx context.Context, limit int) ([]*types.Listing, error)
	Match(ctx context.Context, query *types.ListingMatchQuery) ([]*types.Listing, error)
	MatchCategories(ctx context.Context, categoryIDs, excludeIDs []int64, limit int) ([]*types.Listing, error)
	RegionIDsForAreas(ctx context.Context, areaIDs []int64) ([]int64, error)
}

// RecommendationCache caches computed recommendation sets per user.
// Get returns nil without error on a cache miss.
type RecommendationCache interface {
	Get(ctx context.Context, userID int64) (*types.RecommendationSet, error)
	Set(ctx context.Context, userID int64, set *types.RecommendationSet) error
}

// RecommendationService produces listing recommendations from a user's
// unlock history. Results are cached; concurrent requests for the same
// user may each compute a set, with the last write winning.
type RecommendationService struct {
	unlock  RecommendationUnlockStore
	listing RecommendationListingStore
	cache   RecommendationCache
	logger  *zap.Logger
}

// NewRecommendation creates a new recommendation service.
func NewRecommendation(
	unlock RecommendationUnlockStore,
	listing RecommendationListingStore,
	cache RecommendationCache,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		unlock:  unlock,
		listing: listing,
		cache:   cache,
		logger:  logger.Named("recommendation_service"),
	}
}

// Recommend returns up to recommendationLimit listings for the user,
// serving from cache when a fresh set exists. Cache failures degrade to a
// recompute rather than failing the request.
func (s *RecommendationService) Recommend(ctx context.Context, userID int64) (*types.RecommendationSet, error) {
	if cached, err := s.cache.Get(ctx, userID); err != nil {
		s.logger.Warn("Failed to read recommendation cache",
			zap.Int64("user_id", userID), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	set, err := s.compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, userID, set); err != nil {
		s.logger.Warn("Failed to write recommendation cache",
			zap.Int64("user_id", userID), zap.Error(err))
	}

	return set, nil
}

// compute builds a fresh recommendation set. Users without a single
// successful unlock get the latest available listings; everyone else gets
// profile-matched listings with a category-only fallback.
func (s *RecommendationService) compute(ctx context.Context, userID int64) (*types.RecommendationSet, error) {
	unlocks, err := s.unlock.RecentSuccessful(ctx, userID, profileUnlockCount)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent unlocks: %w", err)
	}

	if len(unlocks) == 0 {
		latest, err := s.listing.Latest(ctx, recommendationLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest listings: %w", err)
		}

		return &types.RecommendationSet{
			ListingIDs: listingIDs(latest),
			Source:     enum.RecommendationSourceLatest,
		}, nil
	}

	unlockedIDs := make([]int64, len(unlocks))
	for i, unlock := range unlocks {
		unlockedIDs[i] = unlock.ListingID
	}

	unlocked, err := s.listing.GetByIDs(ctx, unlockedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked listings: %w", err)
	}

	profile := BuildProfile(unlockedIDs, unlocked)

	if len(profile.AreaIDs) > 0 {
		profile.RegionIDs, err = s.listing.RegionIDsForAreas(ctx, profile.AreaIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve preferred regions: %w", err)
		}
	}

	matched, err := s.listing.Match(ctx, &types.ListingMatchQuery{
		CategoryIDs: profile.CategoryIDs,
		RegionIDs:   profile.RegionIDs,
		MinPrice:    profile.MinPrice,
		MaxPrice:    profile.MaxPrice,
		ExcludeIDs:  profile.ExcludedIDs,
		Limit:       recommendationLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to match listings: %w", err)
	}

	if len(matched) == 0 {
		matched, err = s.listing.MatchCategories(ctx, profile.CategoryIDs, profile.ExcludedIDs, recommendationLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to match listings by category: %w", err)
		}
	}

	return &types.RecommendationSet{
		ListingIDs: listingIDs(matched),
		Source:     enum.RecommendationSourcePersonalized,
	}, nil
}

// BuildProfile derives a preference profile from recently unlocked
// listings. Unlocked IDs are always excluded, even when the listing rows
// are no longer loadable. The price band spans 70% to 130% of the average
// unlocked price.
func BuildProfile(unlockedIDs []int64, unlocked []*types.Listing) *types.PreferenceProfile {
	profile := &types.PreferenceProfile{
		ExcludedIDs: unlockedIDs,
	}

	if len(unlocked) == 0 {
		return profile
	}

	categories := make(map[int64]struct{})
	areas := make(map[int64]struct{})

	var priceSum float64

	for _, listing := range unlocked {
		priceSum += listing.Price

		if _, ok := categories[listing.CategoryID]; !ok {
			categories[listing.CategoryID] = struct{}{}
			profile.CategoryIDs = append(profile.CategoryIDs, listing.CategoryID)
		}

		if listing.AreaID != 0 {
			if _, ok := areas[listing.AreaID]; !ok {
				areas[listing.AreaID] = struct{}{}
				profile.AreaIDs = append(profile.AreaIDs, listing.AreaID)
			}
		}
	}

	avgPrice := priceSum / float64(len(unlocked))
	profile.MinPrice = avgPrice * priceBandLower
	profile.MaxPrice = avgPrice * priceBandUpper

	return profile
}

func listingIDs(listings []*types.Listing) []int64 {
	ids := make([]int64, len(listings))
	for i, listing := range listings {
		ids[i] = listing.ID
	}

	return ids
}
