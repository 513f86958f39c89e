package recommender

import (
	"testing"
	"time"

	"cottagerec/models"
)

func TestCountBookingsEmpty(t *testing.T) {
	if got := countBookings(nil); len(got) != 0 {
		t.Errorf("countBookings(nil): got %d entries, want 0", len(got))
	}
}

func TestCountBookingsFiltersStatus(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", CottageID: "kubo", Status: "confirmed"},
		{ID: "b2", CottageID: "garden", Status: "cancelled"},
		{ID: "b3", CottageID: "kubo", Status: "completed"},
		{ID: "b4", CottageID: "garden", Status: "pending"},
		{ID: "b5", CottageID: "garden", Status: "confirmed"},
	}
	got := countBookings(bookings)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].CottageID != "kubo" || got[0].Count != 2 {
		t.Errorf("top entry: got %s/%d, want kubo/2", got[0].CottageID, got[0].Count)
	}
	if got[1].CottageID != "garden" || got[1].Count != 1 {
		t.Errorf("second entry: got %s/%d, want garden/1", got[1].CottageID, got[1].Count)
	}
}

func TestCountBookingsTiesKeepFirstSeenOrder(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", CottageID: "garden", Status: "confirmed"},
		{ID: "b2", CottageID: "kubo", Status: "confirmed"},
	}
	got := countBookings(bookings)
	if got[0].CottageID != "garden" || got[1].CottageID != "kubo" {
		t.Errorf("tie order: got [%s %s], want [garden kubo]", got[0].CottageID, got[1].CottageID)
	}
}

func TestAverageRatingsEmpty(t *testing.T) {
	if got := averageRatings(nil); len(got) != 0 {
		t.Errorf("averageRatings(nil): got %d entries, want 0", len(got))
	}
}

func TestAverageRatingsMissingRatingCounts(t *testing.T) {
	// A review with no rating decodes to 0 and still contributes to the
	// count, lowering the mean.
	reviews := []models.Review{
		{ID: "r1", CottageID: "kubo", Rating: 4},
		{ID: "r2", CottageID: "kubo"},
	}
	got := averageRatings(reviews)
	if got["kubo"] != 2.0 {
		t.Errorf("kubo average: got %v, want 2.0", got["kubo"])
	}
}

func TestParseISODate(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"2024-01-15", false},
		{"2024-01-15T10:00:00", false},
		{"2024-01-15T10:00:00Z", false},
		{"2024-01-15T10:00:00.000Z", false},
		{"2024-01-15T10:00:00+08:00", false},
		{"15/01/2024", true},
		{"", true},
	}
	for _, c := range cases {
		got, err := parseISODate(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("parseISODate(%q): err=%v, wantErr=%v", c.in, err, c.wantErr)
			continue
		}
		if !c.wantErr && got.Month() != time.January {
			t.Errorf("parseISODate(%q): month=%v, want January", c.in, got.Month())
		}
	}
}

func TestCountSeasonBookingsCollapsesYears(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", CottageID: "kubo", Status: "confirmed", BookingDate: "2024-01-10T00:00:00Z"},
		{ID: "b2", CottageID: "kubo", Status: "completed", BookingDate: "2023-01-05"},
		{ID: "b3", CottageID: "garden", Status: "confirmed", BookingDate: "2024-03-02"},
	}
	target, _ := parseISODate("2025-01-20")
	got, err := countSeasonBookings(bookings, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].CottageID != "kubo" || got[0].Count != 2 {
		t.Errorf("January bucket: got %+v, want [{kubo 2}]", got)
	}
}

func TestCountSeasonBookingsBadDateAborts(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", CottageID: "kubo", Status: "confirmed", BookingDate: "not-a-date"},
	}
	target, _ := parseISODate("2025-01-20")
	if _, err := countSeasonBookings(bookings, target); err == nil {
		t.Error("expected error for unparseable booking date, got nil")
	}
}

func TestCountSeasonBookingsSkipsUncountedStatuses(t *testing.T) {
	// A cancelled booking never reaches date parsing, so its bad date
	// cannot abort the analysis.
	bookings := []models.Booking{
		{ID: "b1", CottageID: "kubo", Status: "cancelled", BookingDate: "garbage"},
	}
	target, _ := parseISODate("2025-01-20")
	got, err := countSeasonBookings(bookings, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

func TestAnalyzeGuestFitCapacityExtraction(t *testing.T) {
	cottages := []models.Cottage{
		{ID: "range", Capacity: "2-4 people"},
		{ID: "single", Capacity: "5 guests"},
		{ID: "textonly", Capacity: "no digits"},
	}

	fits := analyzeGuestFit(cottages, 3)
	if len(fits) != 1 || fits[0].CottageID != "range" {
		t.Fatalf("guests=3: got %+v, want only range", fits)
	}
	// mid=3, max=4: perfect fit.
	if fits[0].FitScore != 1.0 {
		t.Errorf("range fit: got %v, want 1.0", fits[0].FitScore)
	}

	fits = analyzeGuestFit(cottages, 5)
	if len(fits) != 1 || fits[0].CottageID != "single" {
		t.Fatalf("guests=5: got %+v, want only single", fits)
	}
	if fits[0].FitScore != 1.0 {
		t.Errorf("single fit: got %v, want 1.0", fits[0].FitScore)
	}

	if fits = analyzeGuestFit(cottages, 9); len(fits) != 0 {
		t.Errorf("guests=9: got %+v, want none", fits)
	}
}

func TestAnalyzeGuestFitSortedBestFirstStable(t *testing.T) {
	cottages := []models.Cottage{
		{ID: "a", Capacity: "3-4 people"}, // mid 3.5 -> 1 - 0.5/4 = 0.875
		{ID: "b", Capacity: "4 people"},   // exact -> 1.0
		{ID: "c", Capacity: "2-6 people"}, // mid 4 -> 1.0
	}
	fits := analyzeGuestFit(cottages, 4)
	if len(fits) != 3 {
		t.Fatalf("got %d fits, want 3", len(fits))
	}
	// b and c tie at 1.0; original order between them is preserved.
	if fits[0].CottageID != "b" || fits[1].CottageID != "c" || fits[2].CottageID != "a" {
		t.Errorf("order: got [%s %s %s], want [b c a]", fits[0].CottageID, fits[1].CottageID, fits[2].CottageID)
	}
	if fits[2].FitScore != 0.875 {
		t.Errorf("a fit: got %v, want 0.875", fits[2].FitScore)
	}
}
