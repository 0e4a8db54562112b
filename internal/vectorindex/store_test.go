package vectorindex

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "index.json"))

	snap := &Snapshot{
		BuiltAt:    time.Now().UTC(),
		Dimensions: 3,
		Documents: []Document{
			{ID: "a", Text: "first", Embedding: []float32{1, 0, 0}},
			{ID: "b", Text: "second", Embedding: []float32{0, 1, 0}},
		},
	}
	if err := store.Save(snap); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded.Documents) != 2 || loaded.Dimensions != 3 {
		t.Fatalf("unexpected snapshot: %+v", loaded)
	}
	if loaded.Documents[0].ID != "a" || loaded.Documents[1].Text != "second" {
		t.Fatalf("documents not preserved: %+v", loaded.Documents)
	}
}

func TestStoreLoadMissingIndex(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error loading a never-built index")
	}
}

func TestStoreSaveReplacesWholesale(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "index.json"))

	first := &Snapshot{Documents: []Document{{ID: "old", Text: "old", Embedding: []float32{1}}}}
	if err := store.Save(first); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	second := &Snapshot{Documents: []Document{
		{ID: "new-1", Text: "new", Embedding: []float32{1}},
		{ID: "new-2", Text: "newer", Embedding: []float32{1}},
	}}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded.Documents) != 2 || loaded.Documents[0].ID != "new-1" {
		t.Fatalf("old snapshot not replaced: %+v", loaded.Documents)
	}
}

func TestSnapshotSearchRanksByCosineSimilarity(t *testing.T) {
	snap := &Snapshot{
		Documents: []Document{
			{ID: "orthogonal", Embedding: []float32{0, 1}},
			{ID: "aligned", Embedding: []float32{1, 0}},
			{ID: "diagonal", Embedding: []float32{1, 1}},
		},
	}

	matches := snap.Search([]float32{1, 0}, 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Document.ID != "aligned" {
		t.Fatalf("expected best match 'aligned', got %q", matches[0].Document.ID)
	}
	if matches[1].Document.ID != "diagonal" {
		t.Fatalf("expected second match 'diagonal', got %q", matches[1].Document.ID)
	}
	if matches[0].Score <= matches[1].Score {
		t.Fatalf("scores not descending: %v vs %v", matches[0].Score, matches[1].Score)
	}
}

func TestSnapshotSearchEmptyIndex(t *testing.T) {
	snap := &Snapshot{}
	if matches := snap.Search([]float32{1, 0}, 10); len(matches) != 0 {
		t.Fatalf("expected no matches from empty snapshot, got %d", len(matches))
	}
}
