package vectorindex

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Document is one embedded opportunity inside a snapshot.
type Document struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
}

// Snapshot is the persisted vector index over opportunity rows. It is a
// derived, rebuildable artifact: a rebuild replaces it wholesale.
type Snapshot struct {
	BuiltAt    time.Time  `json:"built_at"`
	Dimensions int        `json:"dimensions"`
	Documents  []Document `json:"documents"`
}

// Match is one retrieval result with its similarity score.
type Match struct {
	Document Document
	Score    float64
}

// Store persists snapshots at a fixed path on local disk.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the snapshot atomically: readers loading concurrently see
// either the previous snapshot or the new one, never a torn file.
func (s *Store) Save(snap *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace index: %w", err)
	}
	return nil
}

// Load reads the current snapshot. It fails when no index has been built yet.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w", err)
	}
	return &snap, nil
}

// Search returns the topK documents most similar to the query vector,
// ordered by cosine similarity descending.
func (snap *Snapshot) Search(query []float32, topK int) []Match {
	matches := make([]Match, 0, len(snap.Documents))
	for _, doc := range snap.Documents {
		matches = append(matches, Match{
			Document: doc,
			Score:    cosineSimilarity(query, doc.Embedding),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i] * b[i])
		normA += float64(a[i] * a[i])
		normB += float64(b[i] * b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
