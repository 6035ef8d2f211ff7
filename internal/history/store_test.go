package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecord_AssignsIDAndTime(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	run, err := s.Record(ctx, Run{
		Input: "report.csv", Target: 2020, ValueCount: 6, PairCount: 1,
		First: 1721, Second: 299, Product: 514579,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err, "ID should be a UUID")
	assert.True(t, run.CreatedAt.After(before))

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "report.csv", got.Input)
	assert.Equal(t, int32(2020), got.Target)
	assert.Equal(t, 6, got.ValueCount)
	assert.Equal(t, 1, got.PairCount)
	assert.Equal(t, int32(1721), got.First)
	assert.Equal(t, int32(299), got.Second)
	assert.Equal(t, int64(514579), got.Product)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}

func TestRecord_KeepsExplicitID(t *testing.T) {
	s := openTestStore(t)
	run, err := s.Record(context.Background(), Run{ID: "fixed", Input: "a.csv"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", run.ID)

	_, err = s.Record(context.Background(), Run{ID: "fixed", Input: "b.csv"})
	assert.Error(t, err, "duplicate IDs must be rejected")
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC)

	for i, input := range []string{"one.csv", "two.csv", "three.csv"} {
		_, err := s.Record(ctx, Run{Input: input, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}

	runs, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "three.csv", runs[0].Input)
	assert.Equal(t, "two.csv", runs[1].Input)

	all, err := s.List(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestList_Empty(t *testing.T) {
	runs, err := openTestStore(t).List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpen_ReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.Record(context.Background(), Run{Input: "report.csv"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, path, s.Path())

	runs, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRecord_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), zap.New(core))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Record(context.Background(), Run{Input: "report.csv", Product: 6})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("run recorded").Len())
}
