package advisor

import (
	"context"
	"fmt"
	"log"

	"advisorchat/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicGateway is the Claude-backed CompletionGateway, selected with
// LLM_PROVIDER=anthropic. Same contract and error normalization as the
// OpenAI gateway.
type AnthropicGateway struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicGateway(apiKey, model string) (*AnthropicGateway, error) {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	m := anthropic.Model(model)
	if model == "" {
		m = anthropic.ModelClaude4Sonnet20250514
	}

	return &AnthropicGateway{
		client: &client,
		model:  m,
	}, nil
}

func (g *AnthropicGateway) Complete(ctx context.Context, messages []models.Message) (string, error) {
	var system []anthropic.TextBlockParam
	var turns []anthropic.MessageParam

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			// Anthropic takes the system prompt outside the turn list.
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case models.RoleUser:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			turns = append(turns, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	response, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: MaxResponseTokens,
		Messages:  turns,
		System:    system,
	})
	if err != nil {
		log.Printf("[ERROR] Completion request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	reply := ""
	for _, block := range response.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			reply += text.Text
		}
	}

	return reply, nil
}
