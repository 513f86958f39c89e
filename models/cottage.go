package models

// Cottage represents a bookable unit (cottage, room, or table) as supplied
// by the host resort system. Nothing here is persisted; every request
// carries its own materialized set.
type Cottage struct {
	ID          string   `json:"_id"`                 // Host-side identifier (Mongo ObjectID string)
	Name        string   `json:"name"`                // Display name, e.g. "VE Cottage with Videoke"
	Description string   `json:"description"`         // Free-text description shown to guests
	Price       float64  `json:"price"`               // Price per booking
	Capacity    string   `json:"capacity"`            // Free text, e.g. "2-4 people" or "5 guests"
	Image       string   `json:"image"`               // Image filename within the host app
	Type        string   `json:"type"`                // "Cottage", "Room", "Table"
	Amenities   []string `json:"amenities,omitempty"` // Passed through by the host; not scored
}
