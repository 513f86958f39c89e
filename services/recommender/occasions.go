package recommender

import "strings"

// Occasion names emitted by the detector, in check order.
const (
	OccasionBirthday    = "birthday"
	OccasionAnniversary = "anniversary"
	OccasionParty       = "party"
	OccasionVideoke     = "videoke"
)

// occasionKeywords maps each occasion to its trigger keywords. The sets are
// checked in this fixed order and are substring-matched case-insensitively.
// "celebration" appears in three sets on purpose: a celebration request
// lights up birthday, anniversary and party alike.
var occasionKeywords = []struct {
	occasion string
	keywords []string
}{
	{OccasionBirthday, []string{"birthday", "birth day", "bday", "celebration"}},
	{OccasionAnniversary, []string{"anniversary", "wedding anniversary", "celebration"}},
	{OccasionParty, []string{"party", "celebration", "gathering", "event"}},
	{OccasionVideoke, []string{"videoke", "karaoke", "singing", "music"}},
}

// DetectOccasions scans free-text special requests for celebratory intent.
// The result preserves the fixed check order, lists each occasion at most
// once, and is empty (never nil) for blank input.
func DetectOccasions(specialRequests string) []string {
	occasions := []string{}
	if specialRequests == "" {
		return occasions
	}

	lower := strings.ToLower(specialRequests)
	for _, set := range occasionKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				occasions = append(occasions, set.occasion)
				break
			}
		}
	}
	return occasions
}

// celebrationOccasions are the occasions that warrant the videoke-equipped
// fallback record and the videoke score bonus.
var celebrationOccasions = []string{OccasionBirthday, OccasionParty, OccasionVideoke}

// hasAny reports whether occasions contains at least one of wanted.
func hasAny(occasions, wanted []string) bool {
	for _, o := range occasions {
		for _, w := range wanted {
			if o == w {
				return true
			}
		}
	}
	return false
}
