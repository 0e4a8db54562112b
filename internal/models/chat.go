package models

import (
	"errors"
	"fmt"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

var ErrUnknownRole = errors.New("unknown message role")

// ParseRole maps a wire-level role tag onto the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSystem, RoleUser, RoleAssistant:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// maxHistoryMessages bounds the transcript so a long conversation cannot grow
// the request to the hosted model without limit. The leading system message is
// never evicted.
const maxHistoryMessages = 64

// Transcript is the ordered message list for one logical conversation. It is
// local to a single call: continuity across requests comes from the caller
// resubmitting the history echoed back after each turn.
type Transcript struct {
	messages []Message
}

// NewTranscript seeds the transcript with the fixed staffing-assistant persona.
func NewTranscript(systemPrompt string) *Transcript {
	return &Transcript{
		messages: []Message{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// AppendHistory extends the transcript with caller-supplied prior turns,
// keeping only the most recent turns once the cap is reached.
func (t *Transcript) AppendHistory(history []Message) {
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	t.messages = append(t.messages, history...)
}

// Append adds a single turn.
func (t *Transcript) Append(role Role, content string) {
	t.messages = append(t.messages, Message{Role: role, Content: content})
}

// Messages returns the full transcript including the system message.
func (t *Transcript) Messages() []Message {
	return t.messages
}

// History returns everything after the leading system message. This is the
// value echoed to the caller so the next request can resume the conversation.
func (t *Transcript) History() []Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[1:]
}
