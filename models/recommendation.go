package models

// Recommendation is a single ranked result returned to the caller.
// Field names match the payload the host application consumes.
type Recommendation struct {
	CottageID   string   `json:"cottage_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    string   `json:"capacity"`
	Image       string   `json:"image"`
	Score       float64  `json:"score"`   // Rounded to 2 decimals
	Reasons     []string `json:"reasons"` // Human-readable justifications, fixed order
}

// RecommendRequest is the full payload accepted by both adapters: request
// parameters plus the materialized data bundle supplied by the host.
type RecommendRequest struct {
	GuestCount      *int      `json:"guest_count"` // Defaults to 2 when absent
	BookingDate     string    `json:"booking_date"`
	SpecialRequests string    `json:"special_requests"`
	Cottages        []Cottage `json:"cottages"`
	Bookings        []Booking `json:"bookings"`
	Reviews         []Review  `json:"reviews"`
}

// Guests resolves the guest count, applying the default for absent values.
func (r RecommendRequest) Guests() int {
	if r.GuestCount == nil {
		return 2
	}
	return *r.GuestCount
}

// RecommendAnalysis echoes the derived request context back to the caller.
type RecommendAnalysis struct {
	GuestCount       int      `json:"guest_count"`
	SpecialOccasions []string `json:"special_occasions"`
	BookingDate      string   `json:"booking_date"`
}

// RecommendResponse is the service adapter's response envelope.
type RecommendResponse struct {
	Success         bool               `json:"success"`
	Error           string             `json:"error,omitempty"`
	Recommendations []Recommendation   `json:"recommendations"`
	Analysis        *RecommendAnalysis `json:"analysis,omitempty"`
}
