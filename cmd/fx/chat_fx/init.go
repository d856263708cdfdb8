package chat_fx

import (
	"time"

	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	mem "wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

// History lives as long as the session cookie.
const chatHistoryTTL = 2 * time.Hour

var Module = fx.Provide(
	ProvideChatHistoryStore,
	ProvideChatService,
	ProvideChatController)

func ProvideChatHistoryStore() mem.ChatHistoryStore {
	return mem.NewChatHistories(chatHistoryTTL)
}

func ProvideChatService(
	completion utils.CompletionClientInterface,
	store mem.ChatHistoryStore,
	usageRepo repositories.UsageRepositoryInterface,
) services.ChatServiceInterface {
	return services.NewChatService(completion, store, usageRepo)
}

func ProvideChatController(
	chatService services.ChatServiceInterface,
) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
