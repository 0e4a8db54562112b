package dto

import "staffmatch/internal/models"

// UserRole selects the chat mode. The set is closed: managers collect a new
// opportunity through the plain assistant, consultants search stored
// opportunities through retrieval.
const (
	UserRoleManager    = "manager"
	UserRoleConsultant = "consultant"
)

type ChatRequest struct {
	Prompt      string           `json:"prompt" validate:"required"`
	ChatHistory []models.Message `json:"chat_history"`
	UserRole    string           `json:"user_role" validate:"required,oneof=manager consultant"`
	Model       string           `json:"model"`
}

type ChatResponse struct {
	Response    string           `json:"response"`
	ChatHistory []models.Message `json:"chat_history"`
}

type SummarizeRequest struct {
	ChatHistory []models.Message `json:"chat_history" validate:"required,min=1"`
	Model       string           `json:"model"`
}

type SummarizeResponse struct {
	Response string `json:"response"`
}

type IndexResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
