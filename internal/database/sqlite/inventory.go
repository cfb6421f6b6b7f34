package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/repository"
	"github.com/osse101/InventoryTracker_Go/internal/utils"
)

const recordColumns = `id, description, manufacturer, model, serial_number,
	type, owner, current_user_name, status, added_time`

const (
	insertRecordSQL = `
INSERT INTO inventory (id, description, manufacturer, model, serial_number,
	type, owner, current_user_name, status, added_time)
VALUES (:id, :description, :manufacturer, :model, :serial_number,
	:type, :owner, :current_user_name, :status, :added_time)`

	selectByIDSQL = `SELECT ` + recordColumns + ` FROM inventory WHERE id = ?`

	findByKeySQL = `
SELECT ` + recordColumns + `
FROM inventory
WHERE serial_number = ? AND type = ? AND id <> ?
LIMIT 1`

	updateRecordSQL = `
UPDATE inventory
SET description = :description, manufacturer = :manufacturer, model = :model,
	serial_number = :serial_number, type = :type, owner = :owner,
	current_user_name = :current_user_name, status = :status
WHERE id = :id`

	listRecordsSQL = `SELECT ` + recordColumns + ` FROM inventory ORDER BY seq`

	listNewestFirstSQL = `SELECT ` + recordColumns + ` FROM inventory ORDER BY added_time DESC, seq DESC`

	clearRecordsSQL = `DELETE FROM inventory`
)

// searchRecordsSQL ORs a case-folded containment test across every searchable column.
var searchRecordsSQL = buildSearchSQL()

var searchColumns = []string{"description", "manufacturer", "model", "serial_number", "type", "owner", "current_user_name"}

func buildSearchSQL() string {
	clauses := make([]string, len(searchColumns))
	for i, col := range searchColumns {
		clauses[i] = fmt.Sprintf("instr(%s(%s), ?) > 0", casefoldFunc, col)
	}
	return `SELECT ` + recordColumns + ` FROM inventory WHERE ` +
		strings.Join(clauses, " OR ") + ` ORDER BY added_time DESC, seq DESC`
}

// recordRow is the stored shape; added_time is unix microseconds.
type recordRow struct {
	ID           string `db:"id"`
	Description  string `db:"description"`
	Manufacturer string `db:"manufacturer"`
	Model        string `db:"model"`
	SerialNumber string `db:"serial_number"`
	Type         string `db:"type"`
	Owner        string `db:"owner"`
	CurrentUser  string `db:"current_user_name"`
	Status       string `db:"status"`
	AddedTime    int64  `db:"added_time"`
}

func toRow(r *domain.InventoryRecord) recordRow {
	return recordRow{
		ID:           r.ID,
		Description:  r.Description,
		Manufacturer: r.Manufacturer,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		Type:         r.Type,
		Owner:        r.Owner,
		CurrentUser:  r.CurrentUser,
		Status:       r.Status,
		AddedTime:    r.AddedTime.UnixMicro(),
	}
}

func (row recordRow) record() domain.InventoryRecord {
	return domain.InventoryRecord{
		ID:           row.ID,
		Description:  row.Description,
		Manufacturer: row.Manufacturer,
		Model:        row.Model,
		SerialNumber: row.SerialNumber,
		Type:         row.Type,
		Owner:        row.Owner,
		CurrentUser:  row.CurrentUser,
		Status:       row.Status,
		AddedTime:    time.UnixMicro(row.AddedTime).UTC(),
	}
}

// InventoryRepository implements repository.Inventory for SQLite
type InventoryRepository struct {
	db *sqlx.DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *sqlx.DB) repository.Inventory {
	return &InventoryRepository{db: db}
}

// Insert stores a new record, assigning ID and AddedTime when unset
func (r *InventoryRepository) Insert(ctx context.Context, record *domain.InventoryRecord) (*domain.InventoryRecord, error) {
	rec := *record
	if rec.ID == "" {
		rec.ID = domain.NewRecordID()
	} else {
		id, err := domain.ParseRecordID(rec.ID)
		if err != nil {
			return nil, err
		}
		rec.ID = id
	}
	if rec.AddedTime.IsZero() {
		rec.AddedTime = time.Now()
	}
	rec.AddedTime = rec.AddedTime.UTC().Truncate(time.Microsecond)

	if _, err := r.db.NamedExecContext(ctx, insertRecordSQL, toRow(&rec)); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecord, err)
	}
	return &rec, nil
}

// FindByKey finds the record holding (serialNumber, recordType), ignoring excludeID
func (r *InventoryRepository) FindByKey(ctx context.Context, serialNumber, recordType, excludeID string) (*domain.InventoryRecord, error) {
	if excludeID != "" {
		id, err := domain.ParseRecordID(excludeID)
		if err != nil {
			return nil, err
		}
		excludeID = id
	}

	var row recordRow
	if err := r.db.GetContext(ctx, &row, findByKeySQL, serialNumber, recordType, excludeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindRecord, err)
	}
	rec := row.record()
	return &rec, nil
}

// Update replaces every mutable field of the record; id and added_time are never written
func (r *InventoryRepository) Update(ctx context.Context, id string, input domain.RecordInput) (*domain.InventoryRecord, error) {
	id, err := domain.ParseRecordID(id)
	if err != nil {
		return nil, err
	}

	rec := domain.NewRecord(input)
	rec.ID = id

	res, err := r.db.NamedExecContext(ctx, updateRecordSQL, toRow(rec))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecord, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecord, err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	var row recordRow
	if err := r.db.GetContext(ctx, &row, selectByIDSQL, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecord, err)
	}
	updated := row.record()
	return &updated, nil
}

// List returns every record in insertion order
func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	return r.selectRecords(ctx, ErrMsgFailedToListRecords, listRecordsSQL)
}

// ListNewestFirst returns every record ordered by added_time descending
func (r *InventoryRepository) ListNewestFirst(ctx context.Context) ([]domain.InventoryRecord, error) {
	return r.selectRecords(ctx, ErrMsgFailedToListRecords, listNewestFirstSQL)
}

// Search returns records where any searchable column contains query, ignoring case
func (r *InventoryRepository) Search(ctx context.Context, query string) ([]domain.InventoryRecord, error) {
	folded := utils.FoldCase(query)
	args := make([]any, len(searchColumns))
	for i := range args {
		args[i] = folded
	}
	return r.selectRecords(ctx, ErrMsgFailedToSearch, searchRecordsSQL, args...)
}

// Clear deletes every record
func (r *InventoryRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearRecordsSQL); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClear, err)
	}
	return nil
}

// Ping checks database connectivity
func (r *InventoryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *InventoryRepository) selectRecords(ctx context.Context, errMsg, query string, args ...any) ([]domain.InventoryRecord, error) {
	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	records := make([]domain.InventoryRecord, len(rows))
	for i, row := range rows {
		records[i] = row.record()
	}
	return records, nil
}
