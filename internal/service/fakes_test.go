package service

import (
	"context"
	"errors"

	"staffmatch/internal/models"
	"staffmatch/internal/vectorindex"

	"github.com/google/uuid"
)

// Fake capability implementations shared by the service tests.

type fakeCompleter struct {
	reply    string
	err      error
	received []models.Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []models.Message) (string, error) {
	f.received = append([]models.Message(nil), messages...)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeSummarizer struct {
	reply    string
	err      error
	received string
}

func (f *fakeSummarizer) Summarize(_ context.Context, conversation string) (string, error) {
	f.received = conversation
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeEmbedder struct {
	queryVec []float32
	docVecs  [][]float32
	err      error
}

func (f *fakeEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.docVecs != nil {
		return f.docVecs[:len(texts)], nil
	}
	vecs := make([][]float32, len(texts))
	for i := range texts {
		vecs[i] = []float32{1, 0}
	}
	return vecs, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.queryVec, nil
}

type fakeIndex struct {
	snap *vectorindex.Snapshot
	err  error
}

func (f *fakeIndex) Load() (*vectorindex.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

type fakeIndexWriter struct {
	saved *vectorindex.Snapshot
	err   error
}

func (f *fakeIndexWriter) Save(snap *vectorindex.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.saved = snap
	return nil
}

type fakeOpportunityRepo struct {
	created []*models.Opportunity
	rows    []*models.Opportunity
	crErr   error
	listErr error
}

func (f *fakeOpportunityRepo) Create(_ context.Context, opp *models.Opportunity) error {
	if f.crErr != nil {
		return f.crErr
	}
	f.created = append(f.created, opp)
	return nil
}

func (f *fakeOpportunityRepo) ListAll(_ context.Context) ([]*models.Opportunity, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return user, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.New("no rows in result set")
}
