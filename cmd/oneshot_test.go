package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"cottagerec/models"
	"cottagerec/services/recommender"
)

func newOneShotService(variant recommender.Variant) recommender.RecommenderService {
	return recommender.NewDefaultRecommenderService(variant, 0, zap.NewNop())
}

const oneShotInput = `{
  "guest_count": 4,
  "booking_date": "2024-01-15",
  "special_requests": "Birthday celebration with videoke",
  "cottages": [
    {"_id": "With Videoke", "name": "VE Cottage with Videoke", "description": "Perfect for celebrations with videoke system", "price": 2500, "capacity": "20-25 guests", "image": "vecottage.jpg", "type": "Cottage"},
    {"_id": "garden", "name": "Garden Table", "description": "Cozy garden setting perfect for small groups", "price": 300, "capacity": "5 guests", "image": "gardentable.jpg", "type": "Table"},
    {"_id": "kubo", "name": "Kubo Type", "description": "Traditional kubo perfect for medium-sized groups", "price": 800, "capacity": "10-15 guests", "image": "kubo.jpg", "type": "Cottage"}
  ],
  "bookings": [
    {"_id": "booking1", "cottageId": "With Videoke", "status": "confirmed", "bookingDate": "2024-01-10T00:00:00Z", "numberOfPeople": 20},
    {"_id": "booking2", "cottageId": "garden", "status": "completed", "bookingDate": "2024-06-05T00:00:00Z", "numberOfPeople": 4}
  ],
  "reviews": [
    {"_id": "review1", "cottageId": "With Videoke", "rating": 5, "comment": "Great for birthday parties!"},
    {"_id": "review2", "cottageId": "garden", "rating": 4, "comment": "Perfect for small groups"}
  ]
}`

func TestRunOneShot(t *testing.T) {
	var out, errOut bytes.Buffer
	RunOneShot(strings.NewReader(oneShotInput), &out, &errOut, newOneShotService(recommender.SimpleVariant))

	var recs []models.Recommendation
	if err := json.Unmarshal(out.Bytes(), &recs); err != nil {
		t.Fatalf("stdout is not a JSON array: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	if recs[0].CottageID != "With Videoke" || recs[0].Score != 95 {
		t.Errorf("rank 1: got %s/%v, want With Videoke/95", recs[0].CottageID, recs[0].Score)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr output: %s", errOut.String())
	}
}

func TestRunOneShotInvalidJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	RunOneShot(strings.NewReader("{{{ not json"), &out, &errOut, newOneShotService(recommender.SimpleVariant))

	var recs []models.Recommendation
	if err := json.Unmarshal(out.Bytes(), &recs); err != nil {
		t.Fatalf("stdout must stay a parseable JSON array: %v", err)
	}
	// Default guest count of 2 with no occasions lands in the garden bracket.
	if len(recs) != 1 || recs[0].CottageID != "garden" || recs[0].Score != 85 {
		t.Errorf("fallback: got %+v, want single garden/85", recs)
	}
	if errOut.Len() == 0 {
		t.Error("expected a diagnostic on stderr")
	}
}

func TestRunOneShotScoringFailureStillEmitsArray(t *testing.T) {
	// Valid JSON overall, but the full variant needs a parseable
	// booking_date; a scoring failure must still produce a JSON array.
	input := `{"guest_count": 2, "booking_date": "not-a-date", "cottages": [], "bookings": [], "reviews": []}`

	var out, errOut bytes.Buffer
	RunOneShot(strings.NewReader(input), &out, &errOut, newOneShotService(recommender.FullVariant))

	var recs []models.Recommendation
	if err := json.Unmarshal(out.Bytes(), &recs); err != nil {
		t.Fatalf("stdout must stay a parseable JSON array: %v", err)
	}
	if len(recs) != 1 || recs[0].CottageID != "room1" || recs[0].Score != 85 {
		t.Errorf("fallback: got %+v, want single room1/85", recs)
	}
}

func TestRunOneShotEmptyDataset(t *testing.T) {
	input := `{"guest_count": 6, "special_requests": "", "cottages": [], "bookings": [], "reviews": []}`

	var out, errOut bytes.Buffer
	RunOneShot(strings.NewReader(input), &out, &errOut, newOneShotService(recommender.SimpleVariant))

	var recs []models.Recommendation
	if err := json.Unmarshal(out.Bytes(), &recs); err != nil {
		t.Fatalf("stdout is not a JSON array: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want 0", len(recs))
	}
	if !strings.HasPrefix(strings.TrimSpace(out.String()), "[") {
		t.Errorf("empty result must marshal as [], got %q", out.String())
	}
}
