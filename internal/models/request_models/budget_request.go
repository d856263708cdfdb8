package request_models

// BudgetRequest carries the eleven budget-form fields as raw text, exactly
// as the form submits them. Coercion into typed features happens in the
// budget service so a bad field can be reported instead of failing the bind.
type BudgetRequest struct {
	Destination        string `json:"destination"`
	TripDuration       string `json:"trip_duration"`
	AccommodationType  string `json:"accommodation_type"`
	AccommodationCost  string `json:"accommodation_cost"`
	ActivityPreference string `json:"activity_preference"`
	ActivityCost       string `json:"activity_cost"`
	DiningPreference   string `json:"dining_preference"`
	DiningCost         string `json:"dining_cost"`
	TransportationCost string `json:"transportation_cost"`
	FlightCost         string `json:"flight_cost"`
	SeasonalityFactor  string `json:"seasonality_factor"`
}
