package request_models

type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}
