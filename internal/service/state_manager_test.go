package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/repository"
	"github.com/alexanderramin/montessori/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyStoreSeedsCurriculum(t *testing.T) {
	store := repository.NewMemoryEntryStore()
	m, _ := newTestManager(t, store)

	works := m.Works()
	require.Len(t, works, len(domain.DefaultCurriculum()))
	for i, d := range domain.DefaultCurriculum() {
		assert.Equal(t, d, works[i].Draft())
		assert.NotEmpty(t, works[i].ID)
	}
	assert.Empty(t, m.Students())
	assert.Empty(t, m.Snapshot().Progress)

	assert.Equal(t, 1, store.Writes(repository.KeyWorks), "seed is written back once")
	assert.Equal(t, 0, store.Writes(repository.KeyStudents))
	assert.Equal(t, 0, store.Writes(repository.KeyProgress))
	assert.Len(t, storedJSON(t, store, repository.KeyWorks), len(works))
}

func TestLoad_EmptyWorkListIsNotReseeded(t *testing.T) {
	store := emptyStore(t)
	m, _ := newTestManager(t, store)
	assert.Empty(t, m.Works())
	assert.Equal(t, 1, store.Writes(repository.KeyWorks))
}

func TestLoad_RoundTripsThroughSQLite(t *testing.T) {
	ctx := context.Background()
	store := repository.NewSQLiteEntryStore(testutil.NewTestDB(t))

	m, clock := newTestManager(t, store)
	s, err := m.AddStudent(ctx, testutil.NewTestStudent("Mei", testutil.WithParentContact("138")))
	require.NoError(t, err)
	w := m.Works()[0]
	_, err = m.CycleProgress(ctx, s.ID, w.ID)
	require.NoError(t, err)

	reloaded, err := Load(ctx, store, WithClock(clock.Now))
	require.NoError(t, err)
	assert.Equal(t, m.Students(), reloaded.Students())
	assert.Equal(t, m.Works(), reloaded.Works())
	assert.Equal(t, m.Snapshot().Progress, reloaded.Snapshot().Progress)
	assert.Equal(t, domain.StatusInProgress, reloaded.StatusOf(s.ID, w.ID))
}

func TestLoad_MigratesLegacyProgress(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryEntryStore()
	require.NoError(t, store.Set(ctx, repository.KeyWorks, []byte(`[{"id":"w1","area":"数学区","title":"数棒"},{"id":"w2","area":"语言区","title":"砂纸字母"}]`)))
	require.NoError(t, store.Set(ctx, repository.KeyStudents, []byte(`[{"id":"s1","name":"Mei","gender":"女","age":4}]`)))
	require.NoError(t, store.Set(ctx, repository.KeyProgress, []byte(`[
		{"studentId":"s1","workId":"w1","isCompleted":true,"completedAt":1700000000000},
		{"studentId":"s1","workId":"w2","isCompleted":false}
	]`)))

	m, _ := newTestManager(t, store)

	assert.Equal(t, domain.StatusCompleted, m.StatusOf("s1", "w1"))
	assert.Equal(t, domain.StatusNotStarted, m.StatusOf("s1", "w2"))
	rec, ok := m.Snapshot().Record("s1", "w1")
	require.True(t, ok)
	assert.Equal(t, int64(1700000000000), rec.UpdatedAt.UnixMilli())

	assert.Equal(t, 2, store.Writes(repository.KeyProgress), "migrated progress is rewritten once")
	stored := storedJSON(t, store, repository.KeyProgress)
	require.Len(t, stored, 1)
	assert.Equal(t, "COMPLETED", stored[0]["status"])
	assert.NotContains(t, stored[0], "isCompleted")
}

func TestLoad_LegacyWithoutCompletedAtUsesLoadTime(t *testing.T) {
	ctx := context.Background()
	store := emptyStore(t)
	require.NoError(t, store.Set(ctx, repository.KeyProgress, []byte(`[{"studentId":"s1","workId":"w1","isCompleted":true}]`)))

	m, _ := newTestManager(t, store)
	rec, ok := m.Snapshot().Record("s1", "w1")
	require.True(t, ok)
	assert.Equal(t, testStart, rec.UpdatedAt)
}

func TestLoad_LegacyNonNumericCompletedAtUsesLoadTime(t *testing.T) {
	ctx := context.Background()
	store := emptyStore(t)
	require.NoError(t, store.Set(ctx, repository.KeyProgress, []byte(`[
		{"studentId":"s1","workId":"w1","isCompleted":true,"completedAt":"2024-01-01"},
		{"studentId":"s1","workId":"w2","isCompleted":true,"completedAt":null}
	]`)))

	m, _ := newTestManager(t, store)
	for _, workID := range []string{"w1", "w2"} {
		rec, ok := m.Snapshot().Record("s1", workID)
		require.True(t, ok, workID)
		assert.Equal(t, domain.StatusCompleted, rec.Status)
		assert.Equal(t, testStart, rec.UpdatedAt)
	}
}

func TestLoad_CollapsesDuplicatePairs(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    domain.WorkStatus
	}{
		{
			name: "later updatedAt wins",
			payload: `[
				{"studentId":"s1","workId":"w1","status":"IN_PROGRESS","updatedAt":1700000005000},
				{"studentId":"s1","workId":"w1","status":"COMPLETED","updatedAt":1700000001000}
			]`,
			want: domain.StatusInProgress,
		},
		{
			name: "later element wins a tie",
			payload: `[
				{"studentId":"s1","workId":"w1","status":"COMPLETED"},
				{"studentId":"s1","workId":"w1","status":"IN_PROGRESS"}
			]`,
			want: domain.StatusInProgress,
		},
		{
			name: "legacy and current shapes",
			payload: `[
				{"studentId":"s1","workId":"w1","status":"COMPLETED","updatedAt":1700000000000},
				{"studentId":"s1","workId":"w1","isCompleted":true,"completedAt":1700000000000}
			]`,
			want: domain.StatusCompleted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := emptyStore(t)
			require.NoError(t, store.Set(ctx, repository.KeyProgress, []byte(tt.payload)))

			m, _ := newTestManager(t, store)
			require.Len(t, m.Snapshot().Progress, 1)
			assert.Equal(t, tt.want, m.StatusOf("s1", "w1"))
			assert.Len(t, storedJSON(t, store, repository.KeyProgress), 1, "collapsed collection is written back")
		})
	}
}

func TestLoad_DuplicatePairCyclesCleanly(t *testing.T) {
	ctx := context.Background()
	store := emptyStore(t)
	require.NoError(t, store.Set(ctx, repository.KeyProgress, []byte(`[
		{"studentId":"s1","workId":"w1","status":"IN_PROGRESS"},
		{"studentId":"s1","workId":"w1","status":"COMPLETED"}
	]`)))

	m, _ := newTestManager(t, store)
	status, err := m.CycleProgress(ctx, "s1", "w1")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNotStarted, status)
	assert.Equal(t, domain.StatusNotStarted, m.StatusOf("s1", "w1"))
	assert.Empty(t, m.Snapshot().Progress)
	assert.Empty(t, storedJSON(t, store, repository.KeyProgress))
}

func TestLoad_CurrentShapeIsNotRewritten(t *testing.T) {
	ctx := context.Background()
	store := emptyStore(t)
	require.NoError(t, store.Set(ctx, repository.KeyProgress, []byte(`[{"studentId":"s1","workId":"w1","status":"IN_PROGRESS","updatedAt":1700000000000}]`)))

	m, _ := newTestManager(t, store)
	assert.Equal(t, domain.StatusInProgress, m.StatusOf("s1", "w1"))
	assert.Equal(t, 1, store.Writes(repository.KeyProgress))
}

func TestLoad_DropsStoredNotStarted(t *testing.T) {
	ctx := context.Background()
	store := emptyStore(t)
	require.NoError(t, store.Set(ctx, repository.KeyProgress, []byte(`[{"studentId":"s1","workId":"w1","status":"NOT_STARTED"}]`)))

	m, _ := newTestManager(t, store)
	assert.Empty(t, m.Snapshot().Progress)
	assert.Empty(t, storedJSON(t, store, repository.KeyProgress))
}

func TestLoad_MalformedProgress(t *testing.T) {
	ctx := context.Background()
	for name, payload := range map[string]string{
		"not an array": `{"studentId":"s1"}`,
		"no status":    `[{"studentId":"s1","workId":"w1"}]`,
		"invalid json": `[{`,
		"wrong type":   `[{"studentId":"s1","workId":"w1","isCompleted":"yes"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			store := emptyStore(t)
			require.NoError(t, store.Set(ctx, repository.KeyProgress, []byte(payload)))
			_, err := Load(ctx, store)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedProgress)
		})
	}
}

func TestLoad_MalformedStudents(t *testing.T) {
	ctx := context.Background()
	store := emptyStore(t)
	require.NoError(t, store.Set(ctx, repository.KeyStudents, []byte(`not json`)))
	_, err := Load(ctx, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), repository.KeyStudents)
}

func TestLoad_SeedWriteFailure(t *testing.T) {
	boom := errors.New("disk full")
	store := &testutil.FailOnNthSetStore{Inner: repository.NewMemoryEntryStore(), FailOn: 1, Err: boom}
	_, err := Load(context.Background(), store)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "saving "+repository.KeyWorks)
}

func TestSnapshot_IsACopy(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, repository.NewMemoryEntryStore())
	_, err := m.AddStudent(ctx, testutil.NewTestStudent("Mei"))
	require.NoError(t, err)

	snap := m.Snapshot()
	snap.Students[0].Name = "changed"
	snap.Works = nil

	assert.Equal(t, "Mei", m.Students()[0].Name)
	assert.NotEmpty(t, m.Works())
}
