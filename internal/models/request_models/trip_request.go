package request_models

type CreateTripRequest struct {
	// Destination title, e.g. "Paris" or "northern Vietnam".
	Title string `json:"title" binding:"required,max=100"`
	// Fixed at creation, never altered afterwards.
	NumDays int `json:"num_days" binding:"required,min=1,max=30"`
	// Optional: dietary restrictions, interests, budget, etc.
	Preferences string `json:"preferences"`
}
