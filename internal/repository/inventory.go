package repository

import (
	"context"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
)

// Inventory defines the interface for inventory record persistence.
// Implementations must enforce uniqueness of (serial number, type) and report
// a violation as domain.ErrDuplicateKey.
type Inventory interface {
	// Insert persists record, assigning its ID and AddedTime.
	Insert(ctx context.Context, record *domain.InventoryRecord) (*domain.InventoryRecord, error)
	// FindByKey returns the record with the given serial number and type whose
	// ID differs from excludeID (empty excludeID excludes nothing).
	// Returns domain.ErrNotFound when no such record exists.
	FindByKey(ctx context.Context, serialNumber, recordType, excludeID string) (*domain.InventoryRecord, error)
	// Update replaces the mutable fields of the record with the given ID.
	// Returns domain.ErrNotFound when no such record exists.
	Update(ctx context.Context, id string, input domain.RecordInput) (*domain.InventoryRecord, error)

	List(ctx context.Context) ([]domain.InventoryRecord, error)
	ListNewestFirst(ctx context.Context) ([]domain.InventoryRecord, error)
	// Search matches query as a case-insensitive literal substring of any
	// searchable field, newest first.
	Search(ctx context.Context, query string) ([]domain.InventoryRecord, error)

	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}
