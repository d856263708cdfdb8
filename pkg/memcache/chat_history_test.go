package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/response_models"
)

func TestChatHistoriesAppendOrder(t *testing.T) {
	store := NewChatHistories(time.Hour)

	store.Append("s1", response_models.ChatTurn{User: "hello", Bot: "hi"})
	store.Append("s1", response_models.ChatTurn{User: "plan a trip", Bot: "sure"})
	store.Append("s2", response_models.ChatTurn{User: "other session", Bot: "ok"})

	history := store.History("s1")
	require.Len(t, history, 2)
	require.Equal(t, "hello", history[0].User)
	require.Equal(t, "plan a trip", history[1].User)

	require.Len(t, store.History("s2"), 1)
}

func TestChatHistoriesUnknownSessionIsEmpty(t *testing.T) {
	store := NewChatHistories(time.Hour)
	require.Empty(t, store.History("missing"))
}

func TestChatHistoriesClear(t *testing.T) {
	store := NewChatHistories(time.Hour)

	store.Append("s1", response_models.ChatTurn{User: "a", Bot: "b"})
	store.Append("s1", response_models.ChatTurn{User: "c", Bot: "d"})
	store.Clear("s1")

	require.Empty(t, store.History("s1"))

	// Clearing twice stays a no-op.
	store.Clear("s1")
	require.Empty(t, store.History("s1"))
}

func TestChatHistoriesExpiry(t *testing.T) {
	store := NewChatHistories(10 * time.Millisecond)

	store.Append("s1", response_models.ChatTurn{User: "a", Bot: "b"})
	time.Sleep(20 * time.Millisecond)

	require.Empty(t, store.History("s1"))

	// An append after expiry starts a fresh history.
	store.Append("s1", response_models.ChatTurn{User: "again", Bot: "ok"})
	require.Len(t, store.History("s1"), 1)
}

func TestChatHistoriesHistoryIsACopy(t *testing.T) {
	store := NewChatHistories(time.Hour)
	store.Append("s1", response_models.ChatTurn{User: "a", Bot: "b"})

	history := store.History("s1")
	history[0].User = "mutated"

	require.Equal(t, "a", store.History("s1")[0].User)
}
