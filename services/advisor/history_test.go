package advisor

import (
	"fmt"
	"testing"

	"advisorchat/models"
)

func TestHistoryAppendKeepsOrder(t *testing.T) {
	h := NewHistory()
	h.Append(models.RoleSystem, "prompt")
	h.Append(models.RoleAssistant, "hola")
	h.Append(models.RoleUser, "consulta")

	messages := h.Messages()
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}

	expected := []models.Message{
		{Role: models.RoleSystem, Content: "prompt"},
		{Role: models.RoleAssistant, Content: "hola"},
		{Role: models.RoleUser, Content: "consulta"},
	}
	for i, want := range expected {
		if messages[i] != want {
			t.Errorf("message %d = %+v, expected %+v", i, messages[i], want)
		}
	}
}

func TestHistoryNoTrimAtCapacity(t *testing.T) {
	h := NewHistory()
	for i := 0; i < MaxTurns; i++ {
		h.Append(models.RoleUser, fmt.Sprintf("msg-%d", i))
	}

	if h.Len() != MaxTurns {
		t.Errorf("expected %d messages at capacity, got %d", MaxTurns, h.Len())
	}
}

func TestHistoryTrimKeepsMostRecent(t *testing.T) {
	tests := []struct {
		name    string
		appends int
	}{
		{name: "first overflow", appends: MaxTurns + 1},
		{name: "second overflow", appends: 2*MaxTurns - KeepTurns + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			for i := 0; i < tt.appends; i++ {
				h.Append(models.RoleUser, fmt.Sprintf("msg-%d", i))
			}

			messages := h.Messages()
			if len(messages) != KeepTurns {
				t.Fatalf("expected %d messages after trim, got %d", KeepTurns, len(messages))
			}

			// The survivors are the last KeepTurns appends, oldest first.
			for i, msg := range messages {
				want := fmt.Sprintf("msg-%d", tt.appends-KeepTurns+i)
				if msg.Content != want {
					t.Errorf("message %d = %q, expected %q", i, msg.Content, want)
				}
			}
		})
	}
}

func TestHistoryTrimDropsSystemTurn(t *testing.T) {
	h := NewHistory()
	h.Append(models.RoleSystem, "prompt")
	for i := 0; i < MaxTurns; i++ {
		h.Append(models.RoleUser, fmt.Sprintf("msg-%d", i))
	}

	for _, msg := range h.Messages() {
		if msg.Role == models.RoleSystem {
			t.Errorf("system turn survived the trim")
		}
	}
}

func TestHistoryMessagesReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Append(models.RoleUser, "original")

	messages := h.Messages()
	messages[0].Content = "mutated"

	if h.Messages()[0].Content != "original" {
		t.Errorf("mutating the returned slice changed the history")
	}
}
