package service

import (
	"context"
	"fmt"
	"time"

	"staffmatch/internal/dto"
	"staffmatch/internal/models"
	"staffmatch/internal/vectorindex"

	"go.uber.org/zap"
)

// OpportunityLister reads the full opportunity set for indexing.
type OpportunityLister interface {
	ListAll(ctx context.Context) ([]*models.Opportunity, error)
}

// IndexService rebuilds the persisted vector index from scratch: every stored
// opportunity is re-embedded and the previous snapshot is replaced wholesale.
type IndexService struct {
	opportunities OpportunityLister
	embedder      Embedder
	store         IndexWriter
	logger        *zap.Logger
}

func NewIndexService(opportunities OpportunityLister, embedder Embedder, store IndexWriter, logger *zap.Logger) *IndexService {
	return &IndexService{
		opportunities: opportunities,
		embedder:      embedder,
		store:         store,
		logger:        logger,
	}
}

// Rebuild never returns an error: every failure is reported in the response
// so the trigger endpoint can always answer 200.
func (s *IndexService) Rebuild(ctx context.Context) *dto.IndexResponse {
	opps, err := s.opportunities.ListAll(ctx)
	if err != nil {
		s.logger.Error("Index rebuild: failed to list opportunities", zap.Error(err))
		return &dto.IndexResponse{Success: false, Message: "failed to load opportunities for indexing"}
	}

	texts := make([]string, 0, len(opps))
	for _, opp := range opps {
		texts = append(texts, opp.Details)
	}

	embeddings, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		s.logger.Error("Index rebuild: embedding failed", zap.Error(err))
		return &dto.IndexResponse{Success: false, Message: "failed to embed opportunities"}
	}

	snap := &vectorindex.Snapshot{
		BuiltAt:   time.Now(),
		Documents: make([]vectorindex.Document, 0, len(opps)),
	}
	for i, opp := range opps {
		snap.Documents = append(snap.Documents, vectorindex.Document{
			ID:        opp.ID.String(),
			Text:      opp.Details,
			Embedding: embeddings[i],
		})
	}
	if len(snap.Documents) > 0 {
		snap.Dimensions = len(snap.Documents[0].Embedding)
	}

	if err := s.store.Save(snap); err != nil {
		s.logger.Error("Index rebuild: failed to persist snapshot", zap.Error(err))
		return &dto.IndexResponse{Success: false, Message: "failed to persist opportunity index"}
	}

	s.logger.Info("Opportunity index rebuilt", zap.Int("documents", len(snap.Documents)))
	return &dto.IndexResponse{
		Success: true,
		Message: fmt.Sprintf("indexed %d opportunities", len(snap.Documents)),
	}
}
