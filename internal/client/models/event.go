package models

// DonationEvent is a community fundraising event.
type DonationEvent struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Goal        float64 `json:"goal"`
	Raised      float64 `json:"raised"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
