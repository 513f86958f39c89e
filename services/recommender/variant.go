package recommender

import "cottagerec/models"

// Variant parameterizes the scorer. The service adapter historically ran the
// richer seasonal-aware scoring while the one-shot adapter ran a simpler
// profile with a larger occasion bonus; both now share one implementation
// configured by a Variant value.
type Variant struct {
	Name            string
	IncludeSeasonal bool    // add the seasonal-demand term
	OccasionBonus   float64 // points per occasion-bonus trigger (can stack twice)
	Fallbacks       FallbackTable
}

// FallbackTable holds the static records served when scoring fails.
type FallbackTable struct {
	// Celebration is prepended when detected occasions include a
	// celebration (birthday/party/videoke).
	Celebration models.Recommendation
	// Brackets are evaluated in order; the first bracket whose MaxGuests
	// covers the request contributes exactly one record. MaxGuests 0 marks
	// the catch-all bracket.
	Brackets []FallbackBracket
}

// FallbackBracket pairs a guest-count ceiling with its static record.
type FallbackBracket struct {
	MaxGuests int
	Rec       models.Recommendation
}

// FullVariant is the seasonal-aware profile used by the HTTP service.
var FullVariant = Variant{
	Name:            "full",
	IncludeSeasonal: true,
	OccasionBonus:   10,
	Fallbacks: FallbackTable{
		Celebration: models.Recommendation{
			CottageID:   "ve_cottage",
			Name:        "VE Cottage",
			Description: "Perfect for celebrations with videoke system",
			Price:       2500,
			Capacity:    "4-6 people",
			Image:       "vecottage.jpg",
			Score:       95,
			Reasons:     []string{"Perfect for celebrations", "Includes videoke system"},
		},
		Brackets: []FallbackBracket{
			{MaxGuests: 2, Rec: models.Recommendation{
				CottageID:   "room1",
				Name:        "Room 1",
				Description: "Cozy room perfect for couples",
				Price:       1500,
				Capacity:    "2 people",
				Image:       "room1.jpg",
				Score:       85,
				Reasons:     []string{"Perfect for couples", "Great value"},
			}},
			{MaxGuests: 4, Rec: models.Recommendation{
				CottageID:   "room2",
				Name:        "Room 2",
				Description: "Spacious room for small groups",
				Price:       2000,
				Capacity:    "3-4 people",
				Image:       "room2.jpg",
				Score:       80,
				Reasons:     []string{"Great for small groups", "Comfortable space"},
			}},
			{Rec: models.Recommendation{
				CottageID:   "room3",
				Name:        "Room 3",
				Description: "Large room for bigger groups",
				Price:       3000,
				Capacity:    "5-8 people",
				Image:       "room3.jpg",
				Score:       75,
				Reasons:     []string{"Perfect for large groups", "Spacious accommodation"},
			}},
		},
	},
}

// SimpleVariant is the profile used by the one-shot adapter: no seasonal
// term, doubled occasion bonus, and fallback records matching the resort's
// actual cottage lineup.
var SimpleVariant = Variant{
	Name:            "simple",
	IncludeSeasonal: false,
	OccasionBonus:   20,
	Fallbacks: FallbackTable{
		Celebration: models.Recommendation{
			CottageID:   "With Videoke",
			Name:        "VE Cottage with Videoke",
			Description: "Perfect for celebrations with videoke system",
			Price:       2500,
			Capacity:    "20-25 guests",
			Image:       "vecottage.jpg",
			Score:       95,
			Reasons:     []string{"Perfect for celebrations", "Includes videoke system", "Great for large groups"},
		},
		Brackets: []FallbackBracket{
			{MaxGuests: 5, Rec: models.Recommendation{
				CottageID:   "garden",
				Name:        "Garden Table",
				Description: "Cozy garden setting perfect for small groups",
				Price:       300,
				Capacity:    "5 guests",
				Image:       "gardentable.jpg",
				Score:       85,
				Reasons:     []string{"Perfect for small groups", "Great value", "Garden setting"},
			}},
			{MaxGuests: 15, Rec: models.Recommendation{
				CottageID:   "kubo",
				Name:        "Kubo Type",
				Description: "Traditional kubo perfect for medium-sized groups",
				Price:       800,
				Capacity:    "10-15 guests",
				Image:       "kubo.jpg",
				Score:       80,
				Reasons:     []string{"Great for medium groups", "Traditional setting", "Comfortable space"},
			}},
			{Rec: models.Recommendation{
				CottageID:   "Without Videoke",
				Name:        "VE Cottage without Videoke",
				Description: "Spacious cottage perfect for large groups",
				Price:       2000,
				Capacity:    "20-25 guests",
				Image:       "vecottage.jpg",
				Score:       75,
				Reasons:     []string{"Perfect for large groups", "Spacious accommodation", "Great value"},
			}},
		},
	},
}

// VariantByName resolves a configured variant name, defaulting to def for
// empty or unknown names.
func VariantByName(name string, def Variant) Variant {
	switch name {
	case FullVariant.Name:
		return FullVariant
	case SimpleVariant.Name:
		return SimpleVariant
	default:
		return def
	}
}
