package services

import (
	"context"
	"log"
	"strings"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	mem "wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

const chatSystemPrompt = "You are a helpful assistant."

type ChatServiceInterface interface {
	PostMessage(ctx context.Context, sessionID, message string) ([]response_models.ChatTurn, error)
	History(sessionID string) []response_models.ChatTurn
	Clear(sessionID string)
}

type ChatService struct {
	completion utils.CompletionClientInterface
	store      mem.ChatHistoryStore
	usageRepo  repositories.UsageRepositoryInterface
}

func NewChatService(
	completion utils.CompletionClientInterface,
	store mem.ChatHistoryStore,
	usageRepo repositories.UsageRepositoryInterface,
) ChatServiceInterface {
	return &ChatService{
		completion: completion,
		store:      store,
		usageRepo:  usageRepo,
	}
}

// PostMessage runs one completion round-trip for the session. A completion
// failure is folded into the turn as a synthetic bot reply carrying the
// error text, so the history always gains exactly one turn per message.
func (s *ChatService) PostMessage(ctx context.Context, sessionID, message string) ([]response_models.ChatTurn, error) {
	if strings.TrimSpace(message) == "" {
		return nil, utils.ErrInvalidInput
	}

	var botReply string
	result, err := s.completion.Complete(ctx, chatSystemPrompt, message, utils.ChatMaxTokens)
	if err != nil {
		log.Printf("Chat completion error for session %s: %v", sessionID, err)
		botReply = "Error: " + err.Error()
	} else {
		botReply = result.Text
		s.recordUsage(ctx, sessionID, result)
	}

	s.store.Append(sessionID, response_models.ChatTurn{
		User: message,
		Bot:  botReply,
	})

	return s.store.History(sessionID), nil
}

func (s *ChatService) History(sessionID string) []response_models.ChatTurn {
	return s.store.History(sessionID)
}

func (s *ChatService) Clear(sessionID string) {
	s.store.Clear(sessionID)
}

func (s *ChatService) recordUsage(ctx context.Context, sessionID string, result utils.CompletionResult) {
	usage := &db_models.CompletionUsage{
		SessionID:        sessionID,
		Route:            "chat",
		Model:            result.Model,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		TotalTokens:      result.TotalTokens,
	}
	if err := s.usageRepo.RecordUsage(ctx, usage); err != nil {
		log.Printf("Error recording completion usage: %v", err)
	}
}
