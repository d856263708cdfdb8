package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/predictor"
	"wayfarer/pkg/utils"
)

// BudgetFeatures is the validated, fully-typed form of the budget request.
// It is only ever produced whole: a single bad field fails the whole
// adaptation and no record exists.
type BudgetFeatures struct {
	Destination             string
	TripDurationDays        int
	AccommodationType       string
	AccommodationCostPerDay float64
	ActivityPreference      string
	ActivityCostPerDay      float64
	DiningPreference        string
	DiningCostPerDay        float64
	TransportationCost      float64
	FlightCost              float64
	SeasonalityFactor       float64
}

// AdaptBudgetFeatures coerces the raw form fields with strict parsing and
// reports every problem in one aggregated ErrValidationFailed. Out-of-range
// values (negative costs, zero duration) pass through unclamped.
func AdaptBudgetFeatures(req request_models.BudgetRequest) (BudgetFeatures, error) {
	var problems []string

	requireText := func(field, value string) string {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, field+" is required")
		}
		return value
	}
	parseInt := func(field, value string) int {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be an integer, got %q", field, value))
		}
		return n
	}
	parseFloat := func(field, value string) float64 {
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a number, got %q", field, value))
		}
		return f
	}

	features := BudgetFeatures{
		Destination:             requireText("destination", req.Destination),
		TripDurationDays:        parseInt("trip_duration", req.TripDuration),
		AccommodationType:       requireText("accommodation_type", req.AccommodationType),
		AccommodationCostPerDay: parseFloat("accommodation_cost", req.AccommodationCost),
		ActivityPreference:      requireText("activity_preference", req.ActivityPreference),
		ActivityCostPerDay:      parseFloat("activity_cost", req.ActivityCost),
		DiningPreference:        requireText("dining_preference", req.DiningPreference),
		DiningCostPerDay:        parseFloat("dining_cost", req.DiningCost),
		TransportationCost:      parseFloat("transportation_cost", req.TransportationCost),
		FlightCost:              parseFloat("flight_cost", req.FlightCost),
		SeasonalityFactor:       parseFloat("seasonality_factor", req.SeasonalityFactor),
	}

	if len(problems) > 0 {
		return BudgetFeatures{}, fmt.Errorf("%w: %s", utils.ErrValidationFailed, strings.Join(problems, "; "))
	}
	return features, nil
}

// FeatureRow lays the features out with the exact column names and order
// the trained pipeline expects.
func (f BudgetFeatures) FeatureRow() predictor.FeatureRow {
	return predictor.FeatureRow{
		Columns: []string{
			predictor.ColDestination,
			predictor.ColTripDuration,
			predictor.ColAccommodationType,
			predictor.ColAccommodationCost,
			predictor.ColActivityPreference,
			predictor.ColActivityCost,
			predictor.ColDiningPreference,
			predictor.ColDiningCost,
			predictor.ColTransportationCost,
			predictor.ColFlightCost,
			predictor.ColSeasonalityFactor,
		},
		Values: []predictor.Value{
			predictor.Text(f.Destination),
			predictor.Number(float64(f.TripDurationDays)),
			predictor.Text(f.AccommodationType),
			predictor.Number(f.AccommodationCostPerDay),
			predictor.Text(f.ActivityPreference),
			predictor.Number(f.ActivityCostPerDay),
			predictor.Text(f.DiningPreference),
			predictor.Number(f.DiningCostPerDay),
			predictor.Number(f.TransportationCost),
			predictor.Number(f.FlightCost),
			predictor.Number(f.SeasonalityFactor),
		},
	}
}

type BudgetServiceInterface interface {
	PredictBudget(ctx context.Context, req request_models.BudgetRequest) (*response_models.BudgetResponse, error)
}

type BudgetService struct {
	model predictor.Model
}

func NewBudgetService(model predictor.Model) BudgetServiceInterface {
	return &BudgetService{model: model}
}

// PredictBudget validates the raw fields, scores the single feature row and
// echoes the parsed inputs back with the estimate. Prediction failures
// (e.g. an unseen category) propagate with the underlying message.
func (s *BudgetService) PredictBudget(ctx context.Context, req request_models.BudgetRequest) (*response_models.BudgetResponse, error) {
	features, err := AdaptBudgetFeatures(req)
	if err != nil {
		return nil, err
	}

	predictions, err := s.model.Predict([]predictor.FeatureRow{features.FeatureRow()})
	if err != nil {
		return nil, err
	}
	if len(predictions) != 1 {
		return nil, fmt.Errorf("%w: expected 1 prediction, got %d", utils.ErrPredictionFailed, len(predictions))
	}

	return &response_models.BudgetResponse{
		PredictedBudget:    predictions[0],
		Destination:        features.Destination,
		TripDuration:       features.TripDurationDays,
		AccommodationType:  features.AccommodationType,
		AccommodationCost:  features.AccommodationCostPerDay,
		ActivityPreference: features.ActivityPreference,
		ActivityCost:       features.ActivityCostPerDay,
		DiningPreference:   features.DiningPreference,
		DiningCost:         features.DiningCostPerDay,
		TransportationCost: features.TransportationCost,
		FlightCost:         features.FlightCost,
		SeasonalityFactor:  features.SeasonalityFactor,
	}, nil
}
