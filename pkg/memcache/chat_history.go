// pkg/mem/chat_history.go
package mem

import (
	"sync"
	"time"

	"wayfarer/internal/models/response_models"
)

// ChatHistoryStore keeps per-session chat history for the session's
// lifetime. Append and Clear are the only mutations; both are serialized by
// the store's lock, so two requests racing on one session cannot interleave
// a turn.
type ChatHistoryStore interface {
	Append(sessionID string, turn response_models.ChatTurn)

	// History returns the session's turns in append order. Unknown or
	// expired sessions yield an empty slice, never an error.
	History(sessionID string) []response_models.ChatTurn

	// Clear drops the session's history. Clearing an empty or unknown
	// session is a no-op.
	Clear(sessionID string)
}

type historyEntry struct {
	turns     []response_models.ChatTurn
	expiresAt time.Time
}

type ChatHistories struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]historyEntry
}

func NewChatHistories(ttl time.Duration) *ChatHistories {
	return &ChatHistories{
		ttl:  ttl,
		data: make(map[string]historyEntry),
	}
}

func (s *ChatHistories) Append(sessionID string, turn response_models.ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		e = historyEntry{}
	}
	e.turns = append(e.turns, turn)
	e.expiresAt = time.Now().Add(s.ttl) // sliding expiry
	s.data[sessionID] = e
}

func (s *ChatHistories) History(sessionID string) []response_models.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return []response_models.ChatTurn{}
	}

	out := make([]response_models.ChatTurn, len(e.turns))
	copy(out, e.turns)
	return out
}

func (s *ChatHistories) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
