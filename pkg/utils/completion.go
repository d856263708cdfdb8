package utils

import (
	"context"
	"time"
)

// Both call sites pin temperature at 0.7; only the token bound differs.
const (
	CompletionTemperature = 0.7
	ItineraryMaxTokens    = 1024
	ChatMaxTokens         = 150

	completionTimeout = 45 * time.Second
)

// CompletionResult carries the top choice's text plus the usage numbers
// the ledger records.
type CompletionResult struct {
	Text             string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionClientInterface is the single boundary to the external
// text-completion service. One synchronous request per call.
type CompletionClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (CompletionResult, error)
}

func withCompletionTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, completionTimeout)
}
