package response_models

type BudgetResponse struct {
	PredictedBudget    float64 `json:"predicted_budget"`
	Destination        string  `json:"destination"`
	TripDuration       int     `json:"trip_duration"`
	AccommodationType  string  `json:"accommodation_type"`
	AccommodationCost  float64 `json:"accommodation_cost"`
	ActivityPreference string  `json:"activity_preference"`
	ActivityCost       float64 `json:"activity_cost"`
	DiningPreference   string  `json:"dining_preference"`
	DiningCost         float64 `json:"dining_cost"`
	TransportationCost float64 `json:"transportation_cost"`
	FlightCost         float64 `json:"flight_cost"`
	SeasonalityFactor  float64 `json:"seasonality_factor"`
}
