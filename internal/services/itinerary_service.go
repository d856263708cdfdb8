package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, sessionID string, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	completion utils.CompletionClientInterface
	usageRepo  repositories.UsageRepositoryInterface
}

func NewItineraryService(
	completion utils.CompletionClientInterface,
	usageRepo repositories.UsageRepositoryInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		completion: completion,
		usageRepo:  usageRepo,
	}
}

// GenerateItinerary runs one completion round-trip and parses the reply.
// An upstream failure surfaces as ErrCompletionFailed so the controller can
// answer with a stable 502 instead of an unhandled failure. A reply without
// any "Day" blocks is not a failure; it degrades to an empty itinerary.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, sessionID string, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	prompt := BuildItineraryPrompt(req)

	result, err := s.completion.Complete(ctx, itinerarySystemPrompt, prompt, utils.ItineraryMaxTokens)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyCompletion) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrCompletionFailed, err)
	}

	s.recordUsage(ctx, sessionID, "itinerary", result)

	entries := ParseItinerary(result.Text)
	if len(entries) == 0 {
		log.Printf("Itinerary completion contained no Day blocks for session %s", sessionID)
	}

	return &response_models.ItineraryResponse{
		Location:   req.Location,
		Activities: req.Activities,
		Length:     req.Length,
		Days:       entries,
	}, nil
}

func (s *ItineraryService) recordUsage(ctx context.Context, sessionID, route string, result utils.CompletionResult) {
	usage := &db_models.CompletionUsage{
		SessionID:        sessionID,
		Route:            route,
		Model:            result.Model,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		TotalTokens:      result.TotalTokens,
	}
	if err := s.usageRepo.RecordUsage(ctx, usage); err != nil {
		log.Printf("Error recording completion usage: %v", err)
	}
}
