package recommender

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"cottagerec/models"
)

// cottageCount pairs a cottage with a booking tally. Analyzer results are
// ordered slices (descending by count, ties in first-seen order) so callers
// can rely on rank as well as magnitude.
type cottageCount struct {
	CottageID string
	Count     int
}

// countBookings tallies confirmed/completed bookings per cottage.
// An empty bookings list yields an empty result.
func countBookings(bookings []models.Booking) []cottageCount {
	counts := make(map[string]int)
	var order []string
	for _, b := range bookings {
		if !b.Counts() {
			continue
		}
		if _, seen := counts[b.CottageID]; !seen {
			order = append(order, b.CottageID)
		}
		counts[b.CottageID]++
	}

	out := make([]cottageCount, 0, len(order))
	for _, id := range order {
		out = append(out, cottageCount{CottageID: id, Count: counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// averageRatings computes the mean review rating per cottage. A review with
// a missing rating decodes to 0 and still increments the count, dragging the
// mean down rather than being skipped.
func averageRatings(reviews []models.Review) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range reviews {
		sums[r.CottageID] += r.Rating
		counts[r.CottageID]++
	}

	avgs := make(map[string]float64, len(sums))
	for id, sum := range sums {
		avgs[id] = sum / float64(counts[id])
	}
	return avgs
}

// isoDateLayouts covers the date shapes the host sends: full RFC3339
// timestamps (Date.toISOString()), zone-less timestamps, and bare dates.
var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseISODate parses an ISO-8601 date string, treating a trailing "Z" as
// UTC per RFC3339.
func parseISODate(s string) (time.Time, error) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable ISO-8601 date %q", s)
}

// countSeasonBookings tallies confirmed/completed bookings falling in the
// target date's calendar month, year-independent (all Januaries collapse
// into one bucket). A counted booking with an unparseable date aborts the
// whole analysis: the caller routes the request to the fallback list.
func countSeasonBookings(bookings []models.Booking, target time.Time) ([]cottageCount, error) {
	month := target.Month()

	counts := make(map[string]int)
	var order []string
	for _, b := range bookings {
		if !b.Counts() {
			continue
		}
		date, err := parseISODate(b.BookingDate)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.ID, err)
		}
		if date.Month() != month {
			continue
		}
		if _, seen := counts[b.CottageID]; !seen {
			order = append(order, b.CottageID)
		}
		counts[b.CottageID]++
	}

	out := make([]cottageCount, 0, len(order))
	for _, id := range order {
		out = append(out, cottageCount{CottageID: id, Count: counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

// capacityFit describes how well a cottage's stated capacity matches the
// requested guest count.
type capacityFit struct {
	CottageID string
	Name      string
	Capacity  string
	FitScore  float64
}

var digitRuns = regexp.MustCompile(`\d+`)

// analyzeGuestFit extracts the capacity range from each cottage's free-text
// capacity field ("2-4 people" -> [2,4], "5 guests" -> [5,5]) and keeps the
// cottages whose range contains the guest count. Cottages without any digits
// in the capacity text are excluded entirely. Results are sorted best fit
// first, ties in original order.
func analyzeGuestFit(cottages []models.Cottage, guests int) []capacityFit {
	var fits []capacityFit
	for _, c := range cottages {
		runs := digitRuns.FindAllString(c.Capacity, -1)
		if len(runs) == 0 {
			continue
		}

		minCap := atoiRun(runs[0])
		maxCap := minCap
		if len(runs) > 1 {
			maxCap = atoiRun(runs[len(runs)-1])
		}

		if guests < minCap || guests > maxCap {
			continue
		}
		mid := float64(minCap+maxCap) / 2
		fits = append(fits, capacityFit{
			CottageID: c.ID,
			Name:      c.Name,
			Capacity:  c.Capacity,
			FitScore:  1 - abs(float64(guests)-mid)/float64(maxCap),
		})
	}

	sort.SliceStable(fits, func(i, j int) bool { return fits[i].FitScore > fits[j].FitScore })
	return fits
}

// atoiRun converts a digit-only run. The regexp guarantees the input is
// digits, so conversion cannot fail.
func atoiRun(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
