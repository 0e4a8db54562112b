package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"staffmatch/internal/dto"
	"staffmatch/internal/models"
	"staffmatch/internal/vectorindex"
	"staffmatch/pkg/config"

	"go.uber.org/zap"
)

func newChatService(completer *fakeCompleter, embedder *fakeEmbedder, index *fakeIndex) *ChatService {
	return NewChatService(completer, embedder, index, &config.RAGConfig{TopK: 10}, zap.NewNop())
}

func TestPlainChatAppendsTurnsAndExcludesSystem(t *testing.T) {
	completer := &fakeCompleter{reply: "What rank are you looking for?"}
	svc := newChatService(completer, &fakeEmbedder{}, &fakeIndex{err: errors.New("unused")})

	resp, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Prompt:   "I need a data engineer",
		UserRole: dto.UserRoleManager,
		ChatHistory: []models.Message{
			{Role: models.RoleUser, Content: "hello"},
			{Role: models.RoleAssistant, Content: "hi, how can I help?"},
		},
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}

	if resp.Response != "What rank are you looking for?" {
		t.Fatalf("unexpected response: %q", resp.Response)
	}

	// system prompt + 2 history turns + new user turn go to the model
	if len(completer.received) != 4 {
		t.Fatalf("expected 4 messages submitted, got %d", len(completer.received))
	}
	if completer.received[0].Role != models.RoleSystem {
		t.Fatalf("first submitted message must be the system prompt")
	}

	// echoed history excludes the system message, includes the assistant reply
	if len(resp.ChatHistory) != 4 {
		t.Fatalf("expected 4 echoed messages, got %d", len(resp.ChatHistory))
	}
	for _, msg := range resp.ChatHistory {
		if msg.Role == models.RoleSystem {
			t.Fatalf("system message leaked into chat_history")
		}
	}
	last := resp.ChatHistory[len(resp.ChatHistory)-1]
	if last.Role != models.RoleAssistant || last.Content != resp.Response {
		t.Fatalf("assistant reply not appended: %+v", last)
	}
}

func TestChatUnsupportedModel(t *testing.T) {
	svc := newChatService(&fakeCompleter{reply: "x"}, &fakeEmbedder{}, &fakeIndex{})

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Prompt:   "hello",
		UserRole: dto.UserRoleManager,
		Model:    "mistral",
	})
	if !errors.Is(err, ErrUnsupportedModel) {
		t.Fatalf("expected ErrUnsupportedModel, got %v", err)
	}
}

func TestChatDefaultModelAccepted(t *testing.T) {
	svc := newChatService(&fakeCompleter{reply: "x"}, &fakeEmbedder{}, &fakeIndex{})

	for _, model := range []string{"", "gigachat", "GigaChat"} {
		if _, err := svc.Chat(context.Background(), &dto.ChatRequest{
			Prompt:   "hello",
			UserRole: dto.UserRoleManager,
			Model:    model,
		}); err != nil {
			t.Fatalf("model %q rejected: %v", model, err)
		}
	}
}

func TestChatUnknownRole(t *testing.T) {
	svc := newChatService(&fakeCompleter{reply: "x"}, &fakeEmbedder{}, &fakeIndex{})

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Prompt:   "hello",
		UserRole: "director",
	})
	if !errors.Is(err, ErrUnknownUserRole) {
		t.Fatalf("expected ErrUnknownUserRole, got %v", err)
	}
}

func TestRetrievalChatFallsBackWhenIndexMissing(t *testing.T) {
	completer := &fakeCompleter{reply: "should not be called"}
	svc := newChatService(completer, &fakeEmbedder{}, &fakeIndex{err: errors.New("index not built")})

	resp, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Prompt:   "any postgres opportunities?",
		UserRole: dto.UserRoleConsultant,
	})
	if err != nil {
		t.Fatalf("expected graceful fallback, got error: %v", err)
	}
	if resp.Response != noIndexFallback {
		t.Fatalf("unexpected fallback text: %q", resp.Response)
	}
	if completer.received != nil {
		t.Fatalf("model must not be called when the index is unavailable")
	}

	// the fallback turn is still part of the echoed history
	last := resp.ChatHistory[len(resp.ChatHistory)-1]
	if last.Role != models.RoleAssistant || last.Content != noIndexFallback {
		t.Fatalf("fallback not appended to history: %+v", last)
	}
}

func TestRetrievalChatKeepsContextOutOfHistory(t *testing.T) {
	snap := &vectorindex.Snapshot{
		Dimensions: 2,
		Documents: []vectorindex.Document{
			{ID: "1", Text: "Data platform build-out for Acme", Embedding: []float32{1, 0}},
		},
	}
	completer := &fakeCompleter{reply: "The Acme engagement fits."}
	embedder := &fakeEmbedder{queryVec: []float32{1, 0}}
	svc := newChatService(completer, embedder, &fakeIndex{snap: snap})

	first, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Prompt:   "looking for data engineering work",
		UserRole: dto.UserRoleConsultant,
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	for _, msg := range first.ChatHistory {
		if msg.Role == models.RoleSystem {
			t.Fatalf("retrieval context leaked into chat_history: %+v", msg)
		}
	}

	// Resubmit the echoed history; the next turn must inject exactly one
	// fresh context block, not stack it on a stale one.
	second, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Prompt:      "tell me more about the Acme one",
		UserRole:    dto.UserRoleConsultant,
		ChatHistory: first.ChatHistory,
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}

	var contextBlocks int
	for _, msg := range completer.received {
		if msg.Role == models.RoleSystem && strings.Contains(msg.Content, "Acme") {
			contextBlocks++
		}
	}
	if contextBlocks != 1 {
		t.Fatalf("expected exactly 1 retrieval-context block submitted, got %d", contextBlocks)
	}
	for _, msg := range second.ChatHistory {
		if msg.Role == models.RoleSystem {
			t.Fatalf("retrieval context leaked into chat_history: %+v", msg)
		}
	}
}

func TestRetrievalChatInjectsMatchedOpportunities(t *testing.T) {
	snap := &vectorindex.Snapshot{
		Dimensions: 2,
		Documents: []vectorindex.Document{
			{ID: "1", Text: "Data platform build-out for Acme", Embedding: []float32{1, 0}},
			{ID: "2", Text: "Tax audit support for Globex", Embedding: []float32{0, 1}},
		},
	}
	completer := &fakeCompleter{reply: "The Acme engagement fits your profile."}
	embedder := &fakeEmbedder{queryVec: []float32{1, 0}}
	svc := newChatService(completer, embedder, &fakeIndex{snap: snap})

	resp, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Prompt:   "looking for data engineering work",
		UserRole: dto.UserRoleConsultant,
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if resp.Response != completer.reply {
		t.Fatalf("unexpected response: %q", resp.Response)
	}

	var contextMsg string
	for _, msg := range completer.received {
		if msg.Role == models.RoleSystem && strings.Contains(msg.Content, "Acme") {
			contextMsg = msg.Content
		}
	}
	if contextMsg == "" {
		t.Fatalf("retrieved opportunities not injected into the transcript")
	}
	if !strings.Contains(contextMsg, "Data platform build-out for Acme") {
		t.Fatalf("best match missing from context: %q", contextMsg)
	}
}
