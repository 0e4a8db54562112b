package models

import (
	"fmt"
	"testing"
)

func TestTranscriptSeedsSystemPrompt(t *testing.T) {
	tr := NewTranscript("persona")

	msgs := tr.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != RoleSystem || msgs[0].Content != "persona" {
		t.Fatalf("unexpected seed message: %+v", msgs[0])
	}
	if len(tr.History()) != 0 {
		t.Fatalf("history should exclude the system message")
	}
}

func TestTranscriptHistoryExcludesSystem(t *testing.T) {
	tr := NewTranscript("persona")
	tr.AppendHistory([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	tr.Append(RoleUser, "next")

	history := tr.History()
	if len(history) != 3 {
		t.Fatalf("expected 3 history messages, got %d", len(history))
	}
	for _, msg := range history {
		if msg.Role == RoleSystem {
			t.Fatalf("system message leaked into history")
		}
	}
	if history[2].Content != "next" {
		t.Fatalf("unexpected last message: %+v", history[2])
	}
}

func TestTranscriptCapsHistory(t *testing.T) {
	var long []Message
	for i := 0; i < maxHistoryMessages+10; i++ {
		long = append(long, Message{Role: RoleUser, Content: fmt.Sprintf("msg-%d", i)})
	}

	tr := NewTranscript("persona")
	tr.AppendHistory(long)

	history := tr.History()
	if len(history) != maxHistoryMessages {
		t.Fatalf("expected history capped at %d, got %d", maxHistoryMessages, len(history))
	}
	// The oldest turns are evicted, the newest kept
	if history[len(history)-1].Content != fmt.Sprintf("msg-%d", maxHistoryMessages+9) {
		t.Fatalf("unexpected newest message: %+v", history[len(history)-1])
	}
	if tr.Messages()[0].Role != RoleSystem {
		t.Fatalf("system message must survive the cap")
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"system", "user", "assistant"} {
		if _, err := ParseRole(valid); err != nil {
			t.Fatalf("ParseRole(%q) error: %v", valid, err)
		}
	}
	if _, err := ParseRole("moderator"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
