// Package predictor serves budget predictions from a regression pipeline
// exported to a JSON artifact by the offline training job. The artifact is
// loaded once at startup and never mutated, so the model is safe to share
// across requests without locking.
package predictor

import (
	"encoding/json"
	"fmt"
	"os"

	"wayfarer/pkg/utils"
)

// Column names as the pipeline was trained, in training order. A feature
// row must carry exactly these columns or Predict refuses it.
const (
	ColDestination        = "Destination"
	ColTripDuration       = "Trip Duration (Days)"
	ColAccommodationType  = "Accommodation Type"
	ColAccommodationCost  = "Accommodation Cost (per day)"
	ColActivityPreference = "Activity Preference"
	ColActivityCost       = "Activity Cost (per day)"
	ColDiningPreference   = "Dining Preference"
	ColDiningCost         = "Dining Cost (per day)"
	ColTransportationCost = "Transportation Cost"
	ColFlightCost         = "Flight Cost"
	ColSeasonalityFactor  = "Seasonality Factor"
)

// Value is one cell of a feature row: categorical text or a number.
type Value struct {
	Text   string
	Number float64
	IsText bool
}

func Text(s string) Value    { return Value{Text: s, IsText: true} }
func Number(f float64) Value { return Value{Number: f} }

// FeatureRow pairs column names with values, in column order.
type FeatureRow struct {
	Columns []string
	Values  []Value
}

// Model is the single capability the rest of the system sees.
type Model interface {
	Predict(rows []FeatureRow) ([]float64, error)
}

// LinearModel is a linear regression with one-hot encoded categoricals,
// deserialized from the training artifact.
type LinearModel struct {
	artifact artifact
}

type artifact struct {
	Columns     []string                      `json:"columns"`
	Intercept   float64                       `json:"intercept"`
	Numeric     map[string]float64            `json:"numeric"`
	Categorical map[string]map[string]float64 `json:"categorical"`
}

// Load reads the artifact from path. Every declared column must have either
// a numeric coefficient or a categorical coefficient table; anything else
// means the artifact and this loader disagree.
func Load(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read budget model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode budget model artifact: %w", err)
	}

	if len(a.Columns) == 0 {
		return nil, fmt.Errorf("budget model artifact %s declares no columns", path)
	}
	for _, col := range a.Columns {
		_, isNumeric := a.Numeric[col]
		_, isCategorical := a.Categorical[col]
		if isNumeric == isCategorical {
			return nil, fmt.Errorf("budget model artifact column %q must be exactly one of numeric or categorical", col)
		}
	}

	return &LinearModel{artifact: a}, nil
}

// Columns returns the trained column names in training order.
func (m *LinearModel) Columns() []string {
	out := make([]string, len(m.artifact.Columns))
	copy(out, m.artifact.Columns)
	return out
}

// Predict scores each row. A column-set mismatch or an unseen categorical
// level fails the whole call; no defaults are substituted.
func (m *LinearModel) Predict(rows []FeatureRow) ([]float64, error) {
	out := make([]float64, 0, len(rows))
	for i, row := range rows {
		score, err := m.predictOne(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", utils.ErrPredictionFailed, i, err)
		}
		out = append(out, score)
	}
	return out, nil
}

func (m *LinearModel) predictOne(row FeatureRow) (float64, error) {
	if len(row.Columns) != len(m.artifact.Columns) {
		return 0, fmt.Errorf("expected %d columns, got %d", len(m.artifact.Columns), len(row.Columns))
	}
	if len(row.Values) != len(row.Columns) {
		return 0, fmt.Errorf("row has %d columns but %d values", len(row.Columns), len(row.Values))
	}

	score := m.artifact.Intercept
	for i, col := range m.artifact.Columns {
		if row.Columns[i] != col {
			return 0, fmt.Errorf("column %d is %q, expected %q", i, row.Columns[i], col)
		}

		value := row.Values[i]
		if coef, ok := m.artifact.Numeric[col]; ok {
			if value.IsText {
				return 0, fmt.Errorf("column %q expects a number, got %q", col, value.Text)
			}
			score += coef * value.Number
			continue
		}

		levels := m.artifact.Categorical[col]
		if !value.IsText {
			return 0, fmt.Errorf("column %q expects a category, got a number", col)
		}
		coef, ok := levels[value.Text]
		if !ok {
			return 0, fmt.Errorf("unseen category %q for column %q", value.Text, col)
		}
		score += coef
	}

	return score, nil
}
