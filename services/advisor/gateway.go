package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"

	"advisorchat/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

const (
	DefaultOpenAIModel = "gpt-3.5-turbo"

	// MaxResponseTokens caps the length of each assistant reply.
	MaxResponseTokens = 150
)

// ErrCompletion wraps every completion failure: transport errors, provider
// errors and responses with no choices. Callers match it with errors.Is and
// surface a fixed user-facing message; nothing retries automatically.
var ErrCompletion = errors.New("completion call failed")

// CompletionGateway sends a full conversation to a chat-completion provider
// and returns the assistant's reply text. Cancellation and timeouts come
// from the caller's context; the gateway has none of its own.
type CompletionGateway interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
}

type OpenAIGateway struct {
	llm llms.Model
}

func NewOpenAIGateway(apiKey, model string) (*OpenAIGateway, error) {
	if model == "" {
		model = DefaultOpenAIModel
	}

	llm, err := openai.New(
		openai.WithModel(model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIGateway{llm: llm}, nil
}

func (g *OpenAIGateway) Complete(ctx context.Context, messages []models.Message) (string, error) {
	history := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		var msgType schema.ChatMessageType
		switch msg.Role {
		case models.RoleSystem:
			msgType = schema.ChatMessageTypeSystem
		case models.RoleUser:
			msgType = schema.ChatMessageTypeHuman
		default:
			msgType = schema.ChatMessageTypeAI
		}
		history = append(history, llms.TextParts(msgType, msg.Content))
	}

	resp, err := g.llm.GenerateContent(ctx, history, llms.WithMaxTokens(MaxResponseTokens))
	if err != nil {
		log.Printf("[ERROR] Completion request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	if len(resp.Choices) == 0 {
		log.Printf("[ERROR] Completion response contained no choices")
		return "", fmt.Errorf("%w: response contained no choices", ErrCompletion)
	}

	// An empty reply is a normal response, not an error.
	return resp.Choices[0].Content, nil
}
