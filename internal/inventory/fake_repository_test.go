package inventory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/utils"
)

// fakeRepository is an in-memory repository.Inventory that enforces the
// (serialNumber, type) unique index like the real stores do.
type fakeRepository struct {
	mu      sync.Mutex
	records []domain.InventoryRecord

	// hidePrecheck makes FindByKey miss, so only the index can catch duplicates
	hidePrecheck bool
	// failWith is returned by every call when set
	failWith error

	calls map[string]int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{calls: make(map[string]int)}
}

func (f *fakeRepository) called(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeRepository) Insert(_ context.Context, record *domain.InventoryRecord) (*domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpInsert]++
	if f.failWith != nil {
		return nil, f.failWith
	}

	for _, r := range f.records {
		if r.SerialNumber == record.SerialNumber && r.Type == record.Type {
			return nil, domain.ErrDuplicateKey
		}
	}

	rec := *record
	if rec.ID == "" {
		rec.ID = domain.NewRecordID()
	}
	if rec.AddedTime.IsZero() {
		rec.AddedTime = time.Now()
	}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeRepository) FindByKey(_ context.Context, serialNumber, recordType, excludeID string) (*domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpFindByKey]++
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.hidePrecheck {
		return nil, domain.ErrNotFound
	}

	for _, r := range f.records {
		if r.SerialNumber == serialNumber && r.Type == recordType && r.ID != excludeID {
			rec := r
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepository) Update(_ context.Context, id string, input domain.RecordInput) (*domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpUpdate]++
	if f.failWith != nil {
		return nil, f.failWith
	}

	idx := -1
	for i, r := range f.records {
		if r.ID == id {
			idx = i
		} else if r.SerialNumber == input.SerialNumber && r.Type == input.Type {
			return nil, domain.ErrDuplicateKey
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	input.ApplyTo(&f.records[idx])
	rec := f.records[idx]
	return &rec, nil
}

func (f *fakeRepository) List(_ context.Context) ([]domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpList]++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]domain.InventoryRecord(nil), f.records...), nil
}

func (f *fakeRepository) ListNewestFirst(_ context.Context) ([]domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpListNewestFirst]++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return newestFirst(f.records), nil
}

func (f *fakeRepository) Search(_ context.Context, query string) ([]domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[OpSearch]++
	if f.failWith != nil {
		return nil, f.failWith
	}

	var matched []domain.InventoryRecord
	for _, r := range f.records {
		for _, v := range r.SearchableValues() {
			if strings.Contains(utils.FoldCase(v), utils.FoldCase(query)) {
				matched = append(matched, r)
				break
			}
		}
	}
	return newestFirst(matched), nil
}

func (f *fakeRepository) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = nil
	return nil
}

func (f *fakeRepository) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failWith
}

// newestFirst sorts by AddedTime descending, later inserts first on ties
func newestFirst(records []domain.InventoryRecord) []domain.InventoryRecord {
	type indexed struct {
		seq int
		rec domain.InventoryRecord
	}
	rows := make([]indexed, len(records))
	for i, r := range records {
		rows[i] = indexed{seq: i, rec: r}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].rec.AddedTime.Equal(rows[j].rec.AddedTime) {
			return rows[i].rec.AddedTime.After(rows[j].rec.AddedTime)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]domain.InventoryRecord, len(rows))
	for i, r := range rows {
		out[i] = r.rec
	}
	return out
}
