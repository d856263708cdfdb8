package request_models

// ItineraryRequest mirrors the itinerary form: a destination, a free-text
// comma-ish activity list, and the trip length in days.
type ItineraryRequest struct {
	Location   string `json:"location" binding:"required"`
	Activities string `json:"activities" binding:"required"`
	Length     int    `json:"length" binding:"required,min=1"`
}
