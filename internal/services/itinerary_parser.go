package services

import (
	"strings"

	"wayfarer/internal/models/response_models"
)

// ParseItinerary converts raw completion text into ordered day entries.
//
// The generator is instructed to open every day block with the literal word
// "Day"; text before the first occurrence is discarded and a block not
// prefixed that way is silently lost. Within a block the first "." separates
// the day label from the narrative, so a label must not itself contain ".".
// Zero occurrences of "Day" yield an empty slice. The function never fails:
// garbage input produces garbage but well-typed output.
func ParseItinerary(raw string) []response_models.ItineraryEntry {
	flat := strings.ReplaceAll(raw, "\n", "")
	segments := strings.Split(flat, "Day")[1:]

	entries := make([]response_models.ItineraryEntry, 0, len(segments))
	for _, segment := range segments {
		parts := strings.Split(segment, ".")
		entries = append(entries, response_models.ItineraryEntry{
			DayLabel:    strings.TrimSpace(parts[0]),
			Description: strings.Join(parts[1:], "."),
		})
	}
	return entries
}
