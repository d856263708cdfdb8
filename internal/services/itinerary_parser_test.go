package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseItinerarySingleDay(t *testing.T) {
	raw := "Day 4: Roatán Island. Take a ferry...coral reefs."

	entries := ParseItinerary(raw)
	require.Len(t, entries, 1)
	require.Equal(t, "4: Roatán Island", entries[0].DayLabel)
	require.Equal(t, " Take a ferry...coral reefs.", entries[0].Description)
}

func TestParseItineraryMultiDayKeepsOrder(t *testing.T) {
	raw := "Day 1: Tegucigalpa. Arrive and settle in. Explore the old town.\n" +
		"Day 2: Copán Ruinas. Visit the Mayan ruins.\n" +
		"Day 3: Roatán Island. Ferry out to the reef."

	entries := ParseItinerary(raw)
	require.Len(t, entries, 3)
	require.Equal(t, "1: Tegucigalpa", entries[0].DayLabel)
	require.Equal(t, "2: Copán Ruinas", entries[1].DayLabel)
	require.Equal(t, "3: Roatán Island", entries[2].DayLabel)
	require.Equal(t, " Arrive and settle in. Explore the old town.", entries[0].Description)
}

func TestParseItineraryPreamble(t *testing.T) {
	raw := "Here is your itinerary:\nDay 1: Paris. See the Louvre."

	entries := ParseItinerary(raw)
	require.Len(t, entries, 1)
	require.Equal(t, "1: Paris", entries[0].DayLabel)
}

func TestParseItineraryNoDelimiter(t *testing.T) {
	entries := ParseItinerary("Sorry, I cannot help with that.")
	require.NotNil(t, entries)
	require.Empty(t, entries)

	require.Empty(t, ParseItinerary(""))
}

func TestParseItineraryNoPeriod(t *testing.T) {
	entries := ParseItinerary("Day 1: Paris")
	require.Len(t, entries, 1)
	require.Equal(t, "1: Paris", entries[0].DayLabel)
	require.Equal(t, "", entries[0].Description)
}

func TestParseItineraryEmbeddedNewlines(t *testing.T) {
	raw := "Day 1: Kyoto. Morning at Fushimi\nInari. Afternoon in Gion."

	entries := ParseItinerary(raw)
	require.Len(t, entries, 1)
	require.Equal(t, " Morning at FushimiInari. Afternoon in Gion.", entries[0].Description)
}

// Re-parsing the reconstructed text recovers the same entry boundaries as
// long as no day label contains a literal ".".
func TestParseItineraryIdempotentOnReconstruction(t *testing.T) {
	raw := "Day 1: Hanoi. Old quarter walk. Street food tour.Day 2: Ha Long. Bay cruise."
	first := ParseItinerary(raw)
	require.Len(t, first, 2)

	var sb strings.Builder
	for _, e := range first {
		sb.WriteString("Day " + e.DayLabel + "." + e.Description)
	}

	second := ParseItinerary(sb.String())
	require.Equal(t, first, second)
}

func TestParseItineraryCountMatchesDelimiters(t *testing.T) {
	const days = 7
	var sb strings.Builder
	for i := 1; i <= days; i++ {
		sb.WriteString(fmt.Sprintf("Day %d: Stop %d. Narrative for day %d.", i, i, i))
	}

	entries := ParseItinerary(sb.String())
	require.Len(t, entries, days)
	for i, e := range entries {
		require.Equal(t, fmt.Sprintf("%d: Stop %d", i+1, i+1), e.DayLabel)
	}
}
