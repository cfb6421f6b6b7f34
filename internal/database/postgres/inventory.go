package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/repository"
)

const recordColumns = `id::text AS id, description, manufacturer, model, serial_number,
	type, owner, current_user_name, status, added_time`

const (
	insertRecordSQL = `
INSERT INTO inventory (id, description, manufacturer, model, serial_number,
	type, owner, current_user_name, status, added_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + recordColumns

	findByKeySQL = `
SELECT ` + recordColumns + `
FROM inventory
WHERE serial_number = $1 AND type = $2 AND id <> $3
LIMIT 1`

	updateRecordSQL = `
UPDATE inventory
SET description = $2, manufacturer = $3, model = $4, serial_number = $5,
	type = $6, owner = $7, current_user_name = $8, status = $9
WHERE id = $1
RETURNING ` + recordColumns

	listRecordsSQL = `SELECT ` + recordColumns + ` FROM inventory ORDER BY seq`

	listNewestFirstSQL = `SELECT ` + recordColumns + ` FROM inventory ORDER BY added_time DESC, seq DESC`

	searchRecordsSQL = `
SELECT ` + recordColumns + `
FROM inventory
WHERE description ILIKE $1
	OR manufacturer ILIKE $1
	OR model ILIKE $1
	OR serial_number ILIKE $1
	OR type ILIKE $1
	OR owner ILIKE $1
	OR current_user_name ILIKE $1
ORDER BY added_time DESC, seq DESC`

	clearRecordsSQL = `DELETE FROM inventory`
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) repository.Inventory {
	return &InventoryRepository{pool: pool}
}

// Insert stores a new record. A (serial_number, type) collision on the unique
// index is reported as domain.ErrDuplicateKey.
func (r *InventoryRepository) Insert(ctx context.Context, record *domain.InventoryRecord) (*domain.InventoryRecord, error) {
	id := record.ID
	if id == "" {
		id = domain.NewRecordID()
	}
	uid, err := parseRecordUUID(id)
	if err != nil {
		return nil, err
	}

	addedTime := record.AddedTime
	if addedTime.IsZero() {
		addedTime = time.Now()
	}

	rows, err := r.pool.Query(ctx, insertRecordSQL,
		uid,
		record.Description,
		record.Manufacturer,
		record.Model,
		record.SerialNumber,
		record.Type,
		record.Owner,
		record.CurrentUser,
		record.Status,
		addedTime.UTC(),
	)
	if err != nil {
		return nil, r.translate(ErrMsgFailedToInsertRecord, err)
	}

	saved, err := collectOne(rows)
	if err != nil {
		return nil, r.translate(ErrMsgFailedToInsertRecord, err)
	}
	return saved, nil
}

// FindByKey finds the record holding (serialNumber, recordType), ignoring excludeID
func (r *InventoryRepository) FindByKey(ctx context.Context, serialNumber, recordType, excludeID string) (*domain.InventoryRecord, error) {
	exclude := uuid.Nil
	if excludeID != "" {
		var err error
		if exclude, err = parseRecordUUID(excludeID); err != nil {
			return nil, err
		}
	}

	rows, err := r.pool.Query(ctx, findByKeySQL, serialNumber, recordType, exclude)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindRecord, err)
	}

	rec, err := collectOne(rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindRecord, err)
	}
	return rec, nil
}

// Update replaces every mutable field of the record; id and added_time are never written
func (r *InventoryRepository) Update(ctx context.Context, id string, input domain.RecordInput) (*domain.InventoryRecord, error) {
	uid, err := parseRecordUUID(id)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, updateRecordSQL,
		uid,
		input.Description,
		input.Manufacturer,
		input.Model,
		input.SerialNumber,
		input.Type,
		input.Owner,
		input.CurrentUser,
		input.Status,
	)
	if err != nil {
		return nil, r.translate(ErrMsgFailedToUpdateRecord, err)
	}

	rec, err := collectOne(rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, r.translate(ErrMsgFailedToUpdateRecord, err)
	}
	return rec, nil
}

// List returns every record in insertion order
func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	return r.query(ctx, ErrMsgFailedToListRecords, listRecordsSQL)
}

// ListNewestFirst returns every record ordered by added_time descending
func (r *InventoryRepository) ListNewestFirst(ctx context.Context) ([]domain.InventoryRecord, error) {
	return r.query(ctx, ErrMsgFailedToListRecords, listNewestFirstSQL)
}

// Search returns records where any searchable column contains query, ignoring case
func (r *InventoryRepository) Search(ctx context.Context, query string) ([]domain.InventoryRecord, error) {
	return r.query(ctx, ErrMsgFailedToSearch, searchRecordsSQL, likePattern(query))
}

// Clear deletes every record
func (r *InventoryRepository) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, clearRecordsSQL); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClear, err)
	}
	return nil
}

// Ping checks database connectivity
func (r *InventoryRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *InventoryRepository) query(ctx context.Context, errMsg, sql string, args ...any) ([]domain.InventoryRecord, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.InventoryRecord])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	for i := range records {
		records[i].AddedTime = records[i].AddedTime.UTC()
	}
	return records, nil
}

// translate maps a unique violation to domain.ErrDuplicateKey and wraps everything else
func (r *InventoryRepository) translate(errMsg string, err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicateKey
	}
	return fmt.Errorf("%s: %w", errMsg, err)
}

func collectOne(rows pgx.Rows) (*domain.InventoryRecord, error) {
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.InventoryRecord])
	if err != nil {
		return nil, err
	}
	rec.AddedTime = rec.AddedTime.UTC()
	return &rec, nil
}
