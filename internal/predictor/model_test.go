package predictor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wayfarer/pkg/utils"
)

func loadTestModel(t *testing.T) *LinearModel {
	t.Helper()
	model, err := Load(filepath.Join("testdata", "budget_model.json"))
	require.NoError(t, err)
	return model
}

func validRow() FeatureRow {
	return FeatureRow{
		Columns: []string{
			ColDestination,
			ColTripDuration,
			ColAccommodationType,
			ColAccommodationCost,
			ColActivityPreference,
			ColActivityCost,
			ColDiningPreference,
			ColDiningCost,
			ColTransportationCost,
			ColFlightCost,
			ColSeasonalityFactor,
		},
		Values: []Value{
			Text("Paris"),
			Number(5),
			Text("Hotel"),
			Number(100),
			Text("Cultural"),
			Number(40),
			Text("Casual"),
			Number(30),
			Number(80),
			Number(450),
			Number(1.25),
		},
	}
}

func TestLoadValidatesColumns(t *testing.T) {
	model := loadTestModel(t)
	require.Len(t, model.Columns(), 11)
	require.Equal(t, ColDestination, model.Columns()[0])
	require.Equal(t, ColSeasonalityFactor, model.Columns()[10])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
}

func TestLoadRejectsUnattributedColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"columns":["A"],"intercept":0,"numeric":{},"categorical":{}}`), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, `column "A"`)
}

func TestPredictKnownValue(t *testing.T) {
	model := loadTestModel(t)

	// 100 + 150 + 5*80 + 90 + 100*4 + 35 + 40*2 + 10 + 30*2 + 80 + 450 + 1.25*256
	got, err := model.Predict([]FeatureRow{validRow()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.InDelta(t, 2175.0, got[0], 1e-9)
}

func TestPredictUnseenCategory(t *testing.T) {
	model := loadTestModel(t)

	row := validRow()
	row.Values[0] = Text("Atlantis")

	_, err := model.Predict([]FeatureRow{row})
	require.ErrorIs(t, err, utils.ErrPredictionFailed)
	require.ErrorContains(t, err, `unseen category "Atlantis"`)
}

func TestPredictColumnMismatch(t *testing.T) {
	model := loadTestModel(t)

	t.Run("wrong name", func(t *testing.T) {
		row := validRow()
		row.Columns[1] = "Trip Duration"

		_, err := model.Predict([]FeatureRow{row})
		require.ErrorIs(t, err, utils.ErrPredictionFailed)
		require.ErrorContains(t, err, `expected "Trip Duration (Days)"`)
	})

	t.Run("missing column", func(t *testing.T) {
		row := validRow()
		row.Columns = row.Columns[:10]
		row.Values = row.Values[:10]

		_, err := model.Predict([]FeatureRow{row})
		require.ErrorIs(t, err, utils.ErrPredictionFailed)
	})
}

func TestPredictTypeMismatch(t *testing.T) {
	model := loadTestModel(t)

	row := validRow()
	row.Values[1] = Text("five")

	_, err := model.Predict([]FeatureRow{row})
	require.ErrorIs(t, err, utils.ErrPredictionFailed)
	require.ErrorContains(t, err, "expects a number")
}
