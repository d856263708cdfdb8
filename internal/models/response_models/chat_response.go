package response_models

// ChatTurn is one user message and the bot's reply. History is append-only
// and ordered.
type ChatTurn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

type ChatHistoryResponse struct {
	History []ChatTurn `json:"history"`
}
