package response_models

// ItineraryEntry is one parsed day. DayLabel is expected to begin with the
// day number, e.g. "4: Roatán Island"; Description keeps the narrative text
// verbatim, leading space included.
type ItineraryEntry struct {
	DayLabel    string `json:"day_label"`
	Description string `json:"description"`
}

type ItineraryResponse struct {
	Location   string           `json:"location"`
	Activities string           `json:"activities"`
	Length     int              `json:"length"`
	Days       []ItineraryEntry `json:"days"`
}
