package response_models

type TripResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	NumDays     int    `json:"num_days"`
	Preferences string `json:"preferences,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

type DayResponse struct {
	DayNumber int    `json:"day_number"`
	Content   string `json:"content"`
}

type TripDetailResponse struct {
	TripResponse
	Days []DayResponse `json:"days"`
}
