package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staffmatch/internal/dto"
	"staffmatch/internal/models"
	"staffmatch/internal/vectorindex"
	"staffmatch/pkg/config"

	"go.uber.org/zap"
)

// ErrUnknownUserRole is returned when the caller's role tag is outside the
// closed manager/consultant set.
var ErrUnknownUserRole = errors.New("unknown user role")

// staffingSystemPrompt is the fixed persona seeded into every transcript.
const staffingSystemPrompt = `You are a chat bot assistant designed to help with staffing processes. Two types of users will be communicating with you: 1) people with technical skills that are looking for engagements, and 2) people who are trying to staff engagements with the resources who have the correct skills. Your job is to understand what the engagement requirements are and try to match staff with engagements they can contribute to.

Your goal is to gather enough information from the user to be able to create a text summary that will outline all necessary details of the engagement. Keep asking questions until you are confident you are able to do this. When you have enough information, ask the user if they would like to create an opportunity based on this information.

When someone asks you for an engagement, collect the following information:
1. Rank
2. Applicable skills
3. Availability timeline`

// noIndexFallback is the graceful answer returned when the opportunity index
// cannot be loaded in retrieval mode. Never surfaced as an error.
const noIndexFallback = "There are no staffing opportunities available for matching right now. Please check back once opportunities have been recorded, or describe the engagement you are trying to staff."

// ChatService drives one request/response turn against the hosted model. The
// transcript is rebuilt from the caller-supplied history on every call; no
// conversation state survives between requests.
type ChatService struct {
	completer Completer
	embedder  Embedder
	index     IndexLoader
	topK      int
	logger    *zap.Logger
}

func NewChatService(completer Completer, embedder Embedder, index IndexLoader, cfg *config.RAGConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		completer: completer,
		embedder:  embedder,
		index:     index,
		topK:      cfg.TopK,
		logger:    logger,
	}
}

// Chat dispatches on the caller's declared role: managers collect a new
// opportunity through the plain assistant, consultants search stored
// opportunities through retrieval. The role set is closed.
func (s *ChatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if _, err := resolveModel(req.Model); err != nil {
		return nil, err
	}

	switch req.UserRole {
	case dto.UserRoleManager:
		return s.plainChat(ctx, req)
	case dto.UserRoleConsultant:
		return s.retrievalChat(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUserRole, req.UserRole)
	}
}

func (s *ChatService) plainChat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	transcript := models.NewTranscript(staffingSystemPrompt)
	transcript.AppendHistory(req.ChatHistory)
	transcript.Append(models.RoleUser, req.Prompt)

	reply, err := s.completer.Complete(ctx, transcript.Messages())
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	transcript.Append(models.RoleAssistant, reply)

	return &dto.ChatResponse{
		Response:    reply,
		ChatHistory: transcript.History(),
	}, nil
}

func (s *ChatService) retrievalChat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	transcript := models.NewTranscript(staffingSystemPrompt)

	snap, err := s.index.Load()
	if err != nil {
		// Degrade gracefully: a missing or unreadable index means no
		// opportunities are available yet, not a failed request.
		s.logger.Warn("Opportunity index unavailable, returning fallback", zap.Error(err))
		transcript.AppendHistory(req.ChatHistory)
		transcript.Append(models.RoleUser, req.Prompt)
		transcript.Append(models.RoleAssistant, noIndexFallback)
		return &dto.ChatResponse{
			Response:    noIndexFallback,
			ChatHistory: transcript.History(),
		}, nil
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("query embedding failed: %w", err)
	}

	matches := snap.Search(queryVec, s.topK)
	transcript.AppendHistory(req.ChatHistory)
	transcript.Append(models.RoleUser, req.Prompt)

	reply, err := s.completer.Complete(ctx, withRetrievalContext(transcript.Messages(), buildRetrievalContext(matches)))
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	transcript.Append(models.RoleAssistant, reply)

	s.logger.Info("Retrieval chat completed", zap.Int("matches", len(matches)))

	return &dto.ChatResponse{
		Response:    reply,
		ChatHistory: transcript.History(),
	}, nil
}

// withRetrievalContext splices the retrieval context in after the persona for
// the completion call only. The context is recomputed every turn and must not
// reach the echoed history: a caller resubmitting its history would otherwise
// stack a stale context block per turn.
func withRetrievalContext(messages []models.Message, context string) []models.Message {
	out := make([]models.Message, 0, len(messages)+1)
	out = append(out, messages[0], models.Message{Role: models.RoleSystem, Content: context})
	return append(out, messages[1:]...)
}

// buildRetrievalContext renders retrieved opportunities as an extra system
// message conditioning the model's reply.
func buildRetrievalContext(matches []vectorindex.Match) string {
	if len(matches) == 0 {
		return "No stored opportunities matched the user's request. Tell the user that nothing suitable is recorded yet."
	}

	var builder strings.Builder
	builder.WriteString("The following stored staffing opportunities are relevant to the user's request. Use them to answer; do not invent opportunities that are not listed.\n\n")
	for i, match := range matches {
		builder.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, match.Document.Text))
	}
	return builder.String()
}
