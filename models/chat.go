package models

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Phone       string `json:"phone"`
	UserMessage string `json:"userMessage"`
}

type ChatResponse struct {
	BotMessage string `json:"botMessage"`
}
