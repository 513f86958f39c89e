package recommender

import (
	"cottagerec/models"
)

// RecommenderService produces ranked cottage recommendations from the data
// bundle carried on the request. Implementations must be stateless: all
// per-call data arrives as parameters, so a single value is safe to share
// across concurrent requests.
type RecommenderService interface {
	// Recommend scores the supplied cottages and returns up to the configured
	// number of recommendations plus the occasions detected in the special
	// requests text. Scoring failures degrade to the static fallback list;
	// the returned slices are never nil.
	Recommend(req models.RecommendRequest) ([]models.Recommendation, []string)

	// Fallback returns the static recommendation list for the variant,
	// ignoring all caller data except guest count and detected occasions.
	Fallback(guests int, occasions []string) []models.Recommendation
}
