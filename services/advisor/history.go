package advisor

import "advisorchat/models"

const (
	// MaxTurns is the history length at which trimming kicks in.
	MaxTurns = 50
	// KeepTurns is how many of the most recent turns survive a trim.
	KeepTurns = 20
)

// History is the rolling turn log of one conversation. Each history belongs
// to exactly one session and is never shared across conversations; the
// owning session serializes access to it.
type History struct {
	messages []models.Message
}

func NewHistory() *History {
	return &History{}
}

// Append adds a turn at the end and trims the oldest turns once the log
// exceeds MaxTurns, keeping the most recent KeepTurns. The system turn at
// index 0 is not protected from the trim.
func (h *History) Append(role, content string) {
	h.messages = append(h.messages, models.Message{Role: role, Content: content})
	if len(h.messages) > MaxTurns {
		h.messages = h.messages[len(h.messages)-KeepTurns:]
	}
}

// Len reports the number of turns currently held.
func (h *History) Len() int {
	return len(h.messages)
}

// Messages returns a copy of the turns in chronological order.
func (h *History) Messages() []models.Message {
	out := make([]models.Message, len(h.messages))
	copy(out, h.messages)
	return out
}
