package enum

// RecommendationSource tags how a recommendation set was produced.
//
//go:generate go tool enumer -type=RecommendationSource -trimprefix=RecommendationSource -transform=lower -json
type RecommendationSource int

const (
	// RecommendationSourceLatest marks a cold-start result built purely
	// from listing recency.
	RecommendationSourceLatest RecommendationSource = iota
	// RecommendationSourcePersonalized marks a result derived from the
	// user's unlock history, including the relaxed category-only tier.
	RecommendationSourcePersonalized
)
