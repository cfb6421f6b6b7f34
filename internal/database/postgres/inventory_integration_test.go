package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/testing/leaktest"
)

func sampleInput(serial, recordType string) domain.RecordInput {
	return domain.RecordInput{
		Description:  "55 inch 4K QLED TV",
		Manufacturer: "Samsung",
		Model:        "QN55Q80B",
		SerialNumber: serial,
		Type:         recordType,
		Owner:        "Marketing",
		CurrentUser:  "Alice",
		Status:       "In use",
	}
}

func insert(t *testing.T, repo *InventoryRepository, in domain.RecordInput, added time.Time) *domain.InventoryRecord {
	t.Helper()
	rec := domain.NewRecord(in)
	rec.AddedTime = added
	saved, err := repo.Insert(context.Background(), rec)
	require.NoError(t, err)
	return saved
}

func TestInventoryRepository_InsertAssignsIDAndTime(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	saved, err := repo.Insert(ctx, domain.NewRecord(sampleInput("SN-1", "Television")))
	require.NoError(t, err)

	_, err = uuid.Parse(saved.ID)
	assert.NoError(t, err)
	assert.True(t, saved.AddedTime.After(before))
	assert.Equal(t, time.UTC, saved.AddedTime.Location())
	assert.Equal(t, "Samsung", saved.Manufacturer)
	assert.Equal(t, "In use", saved.Status)
}

func TestInventoryRepository_UniqueIndex(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	insert(t, repo, sampleInput("SN-1", "Television"), time.Now())

	_, err := repo.Insert(ctx, domain.NewRecord(sampleInput("SN-1", "Television")))
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	// Same serial with a different type is allowed
	_, err = repo.Insert(ctx, domain.NewRecord(sampleInput("SN-1", "Monitor")))
	assert.NoError(t, err)
}

func TestInventoryRepository_ConcurrentDuplicateInserts(t *testing.T) {
	repo := newTestRepository(t)
	checker := leaktest.NewGoroutineChecker(t)

	const workers = 10
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Insert(context.Background(), domain.NewRecord(sampleInput("RACE-1", "Laptop")))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrDuplicateKey):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, duplicates)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	checker.Check(2)
}

func TestInventoryRepository_FindByKey(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved := insert(t, repo, sampleInput("SN-1", "Television"), time.Now())

	found, err := repo.FindByKey(ctx, "SN-1", "Television", "")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = repo.FindByKey(ctx, "SN-1", "Television", saved.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FindByKey(ctx, "sn-1", "Television", "")
	assert.ErrorIs(t, err, domain.ErrNotFound, "key match is exact")

	_, err = repo.FindByKey(ctx, "SN-1", "Television", "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestInventoryRepository_Update(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved := insert(t, repo, sampleInput("SN-1", "Television"), time.Now().Add(-time.Hour))

	in := sampleInput("SN-1", "Television")
	in.Owner = "Sales"
	in.Status = ""
	updated, err := repo.Update(ctx, saved.ID, in)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.True(t, saved.AddedTime.Equal(updated.AddedTime))
	assert.Equal(t, "Sales", updated.Owner)
	assert.Empty(t, updated.Status)

	_, err = repo.Update(ctx, uuid.NewString(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Update(ctx, "invalid-id", in)
	assert.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestInventoryRepository_UpdateIntoExistingKey(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	insert(t, repo, sampleInput("SN-1", "Television"), time.Now())
	other := insert(t, repo, sampleInput("SN-2", "Television"), time.Now())

	_, err := repo.Update(ctx, other.ID, sampleInput("SN-1", "Television"))
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestInventoryRepository_Ordering(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	first := insert(t, repo, sampleInput("SN-1", "Television"), base.Add(2*time.Minute))
	second := insert(t, repo, sampleInput("SN-2", "Television"), base)
	third := insert(t, repo, sampleInput("SN-3", "Television"), base.Add(time.Minute))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, ids(listed))

	newest, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, third.ID, second.ID}, ids(newest))
}

func TestInventoryRepository_Search(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	tv := insert(t, repo, sampleInput("SAMS001TV2023", "Television"), base)

	camera := sampleInput("SONY002CAM2022", "Camera")
	camera.Manufacturer = "Sony"
	camera.Description = "Full-frame mirrorless 100% weather sealed"
	camera.CurrentUser = "Bob_Smith"
	cam := insert(t, repo, camera, base.Add(time.Minute))

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive", "samsung", []string{tv.ID}},
		{"matches any field", "marketing", []string{cam.ID, tv.ID}},
		{"substring of serial", "002cam", []string{cam.ID}},
		{"percent is literal", "100%", []string{cam.ID}},
		{"underscore is literal", "b_s", []string{cam.ID}},
		{"lone percent matches nothing else", "%%", nil},
		{"no match", "xbox", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestInventoryRepository_ClearAndPing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	insert(t, repo, sampleInput("SN-1", "Television"), time.Now())
	require.NoError(t, repo.Clear(ctx))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.NoError(t, repo.Ping(ctx))
}

func ids(records []domain.InventoryRecord) []string {
	if len(records) == 0 {
		return nil
	}
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
