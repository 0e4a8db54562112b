package service

import (
	"context"
	"errors"
	"strings"

	"staffmatch/internal/models"
	"staffmatch/internal/vectorindex"
)

// ErrUnsupportedModel is returned when a request names a model outside the
// closed supported set.
var ErrUnsupportedModel = errors.New("AI model is not currently supported or does not exist")

// ModelGigaChat is the only supported model identifier. Adding a provider
// means extending supportedModels and wiring a new capability implementation,
// nothing else.
const ModelGigaChat = "gigachat"

var supportedModels = map[string]struct{}{
	ModelGigaChat: {},
}

// resolveModel validates a caller-supplied model identifier, defaulting to
// GigaChat when none is given.
func resolveModel(name string) (string, error) {
	if name == "" {
		return ModelGigaChat, nil
	}
	normalized := strings.ToLower(name)
	if _, ok := supportedModels[normalized]; !ok {
		return "", ErrUnsupportedModel
	}
	return normalized, nil
}

// The hosted provider and the index store are consumed strictly through these
// capability interfaces so the orchestration logic stays provider-agnostic.

// Completer runs one chat-completion turn over a full transcript.
type Completer interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
}

// Summarizer compresses a serialized conversation into an opportunity write-up.
type Summarizer interface {
	Summarize(ctx context.Context, conversation string) (string, error)
}

// Embedder turns texts into vectors.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// IndexLoader loads the current persisted vector index snapshot.
type IndexLoader interface {
	Load() (*vectorindex.Snapshot, error)
}

// IndexWriter replaces the persisted vector index snapshot.
type IndexWriter interface {
	Save(snap *vectorindex.Snapshot) error
}
