package services

import (
	"fmt"

	"wayfarer/internal/models/request_models"
)

const itinerarySystemPrompt = "You are a helpful travel itinerary planner."

// The worked example is embedded verbatim as a few-shot anchor; the parser
// depends on replies following its "Day N: <place>. <description>" shape.
const itineraryFewShotExample = "Day 4: Roatán Island. Take a ferry or a short flight to Roatán Island, " +
	"one of Honduras' most popular tourist destinations. Roatán Island is a Caribbean paradise located " +
	"off the northern coast of Honduras. Known for its stunning beaches, crystal-clear waters, and " +
	"vibrant coral reefs, it is a popular destination for snorkeling, scuba diving, and other water " +
	"activities. The island also offers a range of restaurants, bars, and accommodations to suit any " +
	"budget. Spend the day exploring the island, snorkeling, or scuba diving in the coral reefs."

// BuildItineraryPrompt is pure string composition; the caller is trusted to
// hand in a well-formed request.
func BuildItineraryPrompt(req request_models.ItineraryRequest) string {
	return fmt.Sprintf(
		"Generate a %d-day travel for %s with %s. "+
			"For each day, try to recommend some locations along with the activities for that location. "+
			"Make sure to include a short 2 - 3 sentence description for the locations!"+
			"Each day MUST look exactly like this: %s",
		req.Length, req.Location, req.Activities, itineraryFewShotExample)
}
