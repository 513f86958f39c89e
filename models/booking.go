package models

// Booking statuses that count toward popularity and seasonal demand.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
)

// Booking represents a historical booking record from the host system.
type Booking struct {
	ID              string `json:"_id"`                       // Unique booking identifier
	CottageID       string `json:"cottageId"`                 // Cottage that was booked
	Status          string `json:"status"`                    // e.g. "confirmed", "completed", "cancelled"
	BookingDate     string `json:"bookingDate"`               // ISO-8601 date string
	NumberOfPeople  int    `json:"numberOfPeople"`            // Party size recorded on the booking
	SpecialRequests string `json:"specialRequests,omitempty"` // Free text from the guest; passed through
}

// Counts reports whether the booking contributes to popularity and
// seasonal-demand analysis.
func (b Booking) Counts() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCompleted
}
