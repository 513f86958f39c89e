package recommender

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"cottagerec/models"
)

// DefaultMaxRecommendations is used when no explicit limit is configured.
const DefaultMaxRecommendations = 3

// DefaultRecommenderService is the production implementation. It holds only
// configuration; every call receives its data bundle explicitly, so one
// instance serves concurrent requests without cross-request leakage.
type DefaultRecommenderService struct {
	Variant Variant
	Max     int // recommendations per response; 0 means DefaultMaxRecommendations
	Logger  *zap.Logger
}

// NewDefaultRecommenderService builds a recommender for the given variant.
func NewDefaultRecommenderService(variant Variant, max int, logger *zap.Logger) *DefaultRecommenderService {
	return &DefaultRecommenderService{Variant: variant, Max: max, Logger: logger}
}

// Recommend runs the scoring pipeline. Any scoring failure (the classic case
// is an unparseable booking date) is logged and degraded to the static
// fallback list; callers always receive a usable result.
func (s *DefaultRecommenderService) Recommend(req models.RecommendRequest) ([]models.Recommendation, []string) {
	occasions := DetectOccasions(req.SpecialRequests)

	recs, err := s.score(req, occasions)
	if err != nil {
		s.logger().Warn("scoring failed, serving fallback recommendations",
			zap.String("variant", s.Variant.Name), zap.Error(err))
		return s.Fallback(req.Guests(), occasions), occasions
	}
	return recs, occasions
}

// Point weights per signal. The nominal full-variant ceiling is 110 with
// both occasion bonuses stacked; nothing caps the sum.
const (
	maxPopularityPts = 30.0
	maxRatingPts     = 25.0
	maxSeasonPts     = 20.0
	maxFitPts        = 25.0
)

func (s *DefaultRecommenderService) score(req models.RecommendRequest, occasions []string) ([]models.Recommendation, error) {
	guests := req.Guests()

	bestSellers := countBookings(req.Bookings)
	ratings := averageRatings(req.Reviews)
	guestFit := analyzeGuestFit(req.Cottages, guests)

	var season []cottageCount
	if s.Variant.IncludeSeasonal {
		target, err := parseISODate(req.BookingDate)
		if err != nil {
			return nil, fmt.Errorf("booking_date: %w", err)
		}
		season, err = countSeasonBookings(req.Bookings, target)
		if err != nil {
			return nil, err
		}
	}

	popCounts, maxPop := countIndex(bestSellers)
	seasonCounts, maxSeason := countIndex(season)

	// First fit entry per cottage wins.
	fitByID := make(map[string]float64, len(guestFit))
	for _, f := range guestFit {
		if _, ok := fitByID[f.CottageID]; !ok {
			fitByID[f.CottageID] = f.FitScore
		}
	}

	type scoredCottage struct {
		cottage  models.Cottage
		score    float64
		bookings int
		rating   float64
		season   int
		hasFit   bool
	}

	scored := make([]scoredCottage, 0, len(req.Cottages))
	for _, c := range req.Cottages {
		sc := scoredCottage{cottage: c}

		if n, ok := popCounts[c.ID]; ok {
			sc.bookings = n
			sc.score += float64(n) / float64(maxPop) * maxPopularityPts
		}
		if avg, ok := ratings[c.ID]; ok {
			sc.rating = avg
			sc.score += avg / 5 * maxRatingPts
		}
		if n, ok := seasonCounts[c.ID]; ok {
			sc.season = n
			sc.score += float64(n) / float64(maxSeason) * maxSeasonPts
		}
		if fit, ok := fitByID[c.ID]; ok {
			sc.hasFit = true
			sc.score += fit * maxFitPts
		}

		if len(occasions) > 0 {
			name := strings.ToLower(c.Name)
			desc := strings.ToLower(c.Description)
			// Literal "ve" substring test, preserved for output parity with
			// the host system ("Silver Cottage" qualifies too).
			if strings.Contains(name, "ve") {
				sc.score += s.Variant.OccasionBonus
			}
			if hasAny(occasions, celebrationOccasions) &&
				(strings.Contains(desc, "videoke") || strings.Contains(name, "ve")) {
				sc.score += s.Variant.OccasionBonus
			}
		}

		scored = append(scored, sc)
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	limit := s.Max
	if limit <= 0 {
		limit = DefaultMaxRecommendations
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	recs := make([]models.Recommendation, 0, len(scored))
	for _, sc := range scored {
		reasons := []string{}
		if sc.bookings > 0 {
			reasons = append(reasons, fmt.Sprintf("Popular choice - %d bookings", sc.bookings))
		}
		if sc.rating > 0 {
			reasons = append(reasons, fmt.Sprintf("Highly rated - %.1f/5 stars", sc.rating))
		}
		if sc.season > 0 {
			reasons = append(reasons, "Perfect for this season")
		}
		if sc.hasFit {
			reasons = append(reasons, fmt.Sprintf("Perfect fit for %d guests", guests))
		}
		if len(occasions) > 0 {
			if strings.Contains(strings.ToLower(sc.cottage.Name), "ve") {
				reasons = append(reasons, "Great for celebrations with videoke")
			} else if hasAny(occasions, []string{OccasionBirthday, OccasionParty}) {
				reasons = append(reasons, "Ideal for your special occasion")
			}
		}

		recs = append(recs, models.Recommendation{
			CottageID:   sc.cottage.ID,
			Name:        sc.cottage.Name,
			Description: sc.cottage.Description,
			Price:       sc.cottage.Price,
			Capacity:    sc.cottage.Capacity,
			Image:       sc.cottage.Image,
			Score:       math.Round(sc.score*100) / 100,
			Reasons:     reasons,
		})
	}
	return recs, nil
}

// Fallback serves the variant's static list: a celebration record when the
// detected occasions call for one, then exactly one guest-count bracket
// record, truncated to three.
func (s *DefaultRecommenderService) Fallback(guests int, occasions []string) []models.Recommendation {
	recs := []models.Recommendation{}
	if hasAny(occasions, celebrationOccasions) {
		recs = append(recs, s.Variant.Fallbacks.Celebration)
	}
	for _, b := range s.Variant.Fallbacks.Brackets {
		if b.MaxGuests == 0 || guests <= b.MaxGuests {
			recs = append(recs, b.Rec)
			break
		}
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

// countIndex flattens an ordered count slice into a lookup map plus the
// maximum count (1 when empty, so it is always a safe denominator).
func countIndex(counts []cottageCount) (map[string]int, int) {
	idx := make(map[string]int, len(counts))
	max := 1
	for _, c := range counts {
		idx[c.CottageID] = c.Count
		if c.Count > max {
			max = c.Count
		}
	}
	return idx, max
}

func (s *DefaultRecommenderService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
