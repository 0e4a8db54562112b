package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"staffmatch/internal/dto"
	"staffmatch/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OpportunityWriter persists opportunity rows.
type OpportunityWriter interface {
	Create(ctx context.Context, opp *models.Opportunity) error
}

// SummaryService compresses an accumulated conversation into an opportunity
// write-up and persists it. The model's free-text reply is stored verbatim;
// no structural validation of the sections is performed.
type SummaryService struct {
	summarizer      Summarizer
	opportunityRepo OpportunityWriter
	logger          *zap.Logger
}

func NewSummaryService(summarizer Summarizer, opportunityRepo OpportunityWriter, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		summarizer:      summarizer,
		opportunityRepo: opportunityRepo,
		logger:          logger,
	}
}

func (s *SummaryService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	if _, err := resolveModel(req.Model); err != nil {
		return nil, err
	}

	summary, err := s.summarizer.Summarize(ctx, serializeHistory(req.ChatHistory))
	if err != nil {
		return nil, fmt.Errorf("summarization failed: %w", err)
	}

	opp := &models.Opportunity{
		ID:        uuid.New(),
		Details:   summary,
		CreatedAt: time.Now(),
		// DepartmentID and UserID stay null: the current flow does not
		// attribute opportunities.
	}

	if err := s.opportunityRepo.Create(ctx, opp); err != nil {
		return nil, fmt.Errorf("failed to persist opportunity: %w", err)
	}

	s.logger.Info("Opportunity created from conversation",
		zap.String("opportunity_id", opp.ID.String()),
		zap.Int("history_messages", len(req.ChatHistory)),
	)

	return &dto.SummarizeResponse{Response: summary}, nil
}

// serializeHistory flattens the conversation into the single user turn the
// summarization model receives.
func serializeHistory(history []models.Message) string {
	var builder strings.Builder
	for _, msg := range history {
		builder.WriteString(string(msg.Role))
		builder.WriteString(": ")
		builder.WriteString(msg.Content)
		builder.WriteString("\n")
	}
	return builder.String()
}
