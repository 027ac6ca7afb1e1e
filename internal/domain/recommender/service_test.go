package recommender

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/course-recommender/pkg/errors"
)

type stubRepo struct {
	records []InteractionRecord
	err     error
}

func (r *stubRepo) ListInteractions(context.Context) ([]InteractionRecord, error) {
	return r.records, r.err
}

type stubStore struct {
	mu      sync.Mutex
	entries map[string]Recommendation
	getErr  error
	saves   int
}

func newStubStore() *stubStore {
	return &stubStore{entries: make(map[string]Recommendation)}
}

func (s *stubStore) key(modelID uuid.UUID, userID int64) string {
	return fmt.Sprintf("%s:%d", modelID, userID)
}

func (s *stubStore) GetRecommendation(_ context.Context, modelID uuid.UUID, userID int64) (Recommendation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return Recommendation{}, false, s.getErr
	}
	rec, ok := s.entries[s.key(modelID, userID)]
	return rec, ok, nil
}

func (s *stubStore) SaveRecommendation(_ context.Context, modelID uuid.UUID, rec Recommendation, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.entries[s.key(modelID, rec.UserID)] = rec
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceRecommendBeforeTrain(t *testing.T) {
	svc := NewService(DefaultConfig(), &stubRepo{records: CreateDummyData()}, newStubStore(), newTestLogger())

	_, ok := svc.Model()
	require.False(t, ok)

	_, err := svc.Recommend(context.Background(), Request{UserID: 1})
	require.True(t, IsNotTrained(err))
}

func TestServiceTrainAndCache(t *testing.T) {
	store := newStubStore()
	svc := NewService(DefaultConfig(), &stubRepo{records: CreateDummyData()}, store, newTestLogger())

	info, err := svc.Train(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, info.Version)
	require.Equal(t, 9, info.Records)
	require.Equal(t, 5, info.VocabularySize)

	first, err := svc.Recommend(context.Background(), Request{UserID: 1})
	require.NoError(t, err)
	require.Equal(t, SourceModel, first.Source)
	require.Equal(t, info.ID, first.ModelID)
	require.Equal(t, []int64{4, 5}, first.Items)

	second, err := svc.Recommend(context.Background(), Request{UserID: 1})
	require.NoError(t, err)
	require.Equal(t, SourceCache, second.Source)
	require.Equal(t, first.Items, second.Items)
	require.Equal(t, 1, store.saves)

	retrained, err := svc.Train(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, retrained.Version)
	require.NotEqual(t, info.ID, retrained.ID)

	third, err := svc.Recommend(context.Background(), Request{UserID: 1})
	require.NoError(t, err)
	require.Equal(t, SourceModel, third.Source)
}

func TestServiceTrainFailureKeepsPreviousModel(t *testing.T) {
	repo := &stubRepo{records: CreateDummyData()}
	svc := NewService(DefaultConfig(), repo, nil, newTestLogger())

	info, err := svc.Train(context.Background())
	require.NoError(t, err)

	repo.err = errors.New("db down")
	_, err = svc.Train(context.Background())
	require.True(t, apperrors.IsCode(err, apperrors.CodeRepository))

	current, ok := svc.Model()
	require.True(t, ok)
	require.Equal(t, info.ID, current.ID)

	repo.err = nil
	repo.records = []InteractionRecord{{UserID: 1, ItemID: 1, InteractionType: InteractionView, Subject: "the", Level: "and"}}
	_, err = svc.Train(context.Background())
	require.True(t, IsEmptyVocabulary(err))

	current, _ = svc.Model()
	require.Equal(t, 1, current.Version)
}

func TestServiceCacheErrorsDoNotFailRequests(t *testing.T) {
	store := newStubStore()
	store.getErr = errors.New("cache unavailable")
	svc := NewService(DefaultConfig(), &stubRepo{records: CreateDummyData()}, store, newTestLogger())
	_, err := svc.Train(context.Background())
	require.NoError(t, err)

	resp, err := svc.Recommend(context.Background(), Request{UserID: 3})
	require.NoError(t, err)
	require.Equal(t, []int64{1}, resp.Items)
}

func TestServiceTrainHonoursCancelledContext(t *testing.T) {
	svc := NewService(DefaultConfig(), &stubRepo{records: CreateDummyData()}, nil, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Train(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, ok := svc.Model()
	require.False(t, ok)
}
