package models

// Review represents a guest review from the host system. A missing rating
// decodes to 0 and still counts toward the average (it drags the mean down
// rather than being skipped).
type Review struct {
	ID        string  `json:"_id"`
	CottageID string  `json:"cottageId"`
	Rating    float64 `json:"rating"` // 0-5 stars
	Comment   string  `json:"comment"`
}
