package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/InventoryTracker_Go/internal/concurrency"
	"github.com/osse101/InventoryTracker_Go/internal/domain"
	"github.com/osse101/InventoryTracker_Go/internal/logger"
	"github.com/osse101/InventoryTracker_Go/internal/metrics"
	"github.com/osse101/InventoryTracker_Go/internal/repository"
)

// Service defines the inventory operations exposed to the HTTP layer
type Service interface {
	Create(ctx context.Context, input domain.RecordInput) (*domain.InventoryRecord, error)
	Update(ctx context.Context, id string, input domain.RecordInput) (*domain.InventoryRecord, error)
	List(ctx context.Context) ([]domain.InventoryRecord, error)
	Search(ctx context.Context, query string) ([]domain.InventoryRecord, error)
	Ping(ctx context.Context) error
}

type service struct {
	repo     repository.Inventory
	validate *validator.Validate
	cache    *searchCache
	keys     *concurrency.LockManager
	now      func() time.Time
}

// NewService creates a new inventory service. A cacheSize of 0 disables the
// search result cache.
func NewService(repo repository.Inventory, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		validate: newValidator(),
		cache:    newSearchCache(cacheSize, cacheTTL),
		keys:     concurrency.NewLockManager(),
		now:      time.Now,
	}
}

// Create validates input, rejects an existing (serialNumber, type) pair and
// stores a new record stamped with the current time.
func (s *service) Create(ctx context.Context, input domain.RecordInput) (*domain.InventoryRecord, error) {
	log := logger.FromContext(ctx)

	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	unlock := s.keys.Lock(recordKey(input))
	defer unlock()

	if err := s.ensureKeyAvailable(ctx, input, ""); err != nil {
		return nil, err
	}

	record := domain.NewRecord(input)
	record.ID = domain.NewRecordID()
	record.AddedTime = s.now()

	start := time.Now()
	saved, err := s.repo.Insert(ctx, record)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			metrics.ObserveStoreOperation(OpInsert, start, nil)
			return nil, s.duplicate(ctx, input, metrics.GuardIndex)
		}
		metrics.ObserveStoreOperation(OpInsert, start, err)
		return nil, s.internal(ctx, OpInsert, err)
	}
	metrics.ObserveStoreOperation(OpInsert, start, nil)

	s.purgeCache(ctx)
	metrics.RecordsCreated.Inc()
	log.Info(LogMsgRecordCreated, "id", saved.ID, "serial_number", saved.SerialNumber, "type", saved.Type)
	return saved, nil
}

// Update replaces every mutable field of record id. The id is checked first so
// a malformed id fails before the payload is looked at.
func (s *service) Update(ctx context.Context, id string, input domain.RecordInput) (*domain.InventoryRecord, error) {
	log := logger.FromContext(ctx)

	id, err := domain.ParseRecordID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	unlock := s.keys.Lock(recordKey(input))
	defer unlock()

	if err := s.ensureKeyAvailable(ctx, input, id); err != nil {
		return nil, err
	}

	start := time.Now()
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			metrics.ObserveStoreOperation(OpUpdate, start, nil)
			return nil, err
		case errors.Is(err, domain.ErrDuplicateKey):
			metrics.ObserveStoreOperation(OpUpdate, start, nil)
			return nil, s.duplicate(ctx, input, metrics.GuardIndex)
		default:
			metrics.ObserveStoreOperation(OpUpdate, start, err)
			return nil, s.internal(ctx, OpUpdate, err)
		}
	}
	metrics.ObserveStoreOperation(OpUpdate, start, nil)

	s.purgeCache(ctx)
	metrics.RecordsUpdated.Inc()
	log.Info(LogMsgRecordUpdated, "id", updated.ID)
	return updated, nil
}

// List returns every record in store order
func (s *service) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	start := time.Now()
	records, err := s.repo.List(ctx)
	metrics.ObserveStoreOperation(OpList, start, err)
	if err != nil {
		return nil, s.internal(ctx, OpList, err)
	}
	return records, nil
}

// Search returns records with any text field containing query, ignoring case,
// newest first. A blank query returns every record newest first.
func (s *service) Search(ctx context.Context, query string) ([]domain.InventoryRecord, error) {
	if strings.TrimSpace(query) == "" {
		metrics.SearchesPerformed.WithLabelValues(metrics.SearchModeAll).Inc()

		start := time.Now()
		records, err := s.repo.ListNewestFirst(ctx)
		metrics.ObserveStoreOperation(OpListNewestFirst, start, err)
		if err != nil {
			return nil, s.internal(ctx, OpListNewestFirst, err)
		}
		return records, nil
	}

	metrics.SearchesPerformed.WithLabelValues(metrics.SearchModeQuery).Inc()

	if cached, ok := s.cache.Get(query); ok {
		metrics.SearchCacheHits.Inc()
		logger.FromContext(ctx).Debug(LogMsgSearchCacheHit, "query", query, "results", len(cached))
		return cached, nil
	}

	gen := s.cache.Generation()
	start := time.Now()
	records, err := s.repo.Search(ctx, query)
	metrics.ObserveStoreOperation(OpSearch, start, err)
	if err != nil {
		return nil, s.internal(ctx, OpSearch, err)
	}

	s.cache.Add(query, gen, records)
	return records, nil
}

// Ping checks that the store is reachable
func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *service) validateInput(ctx context.Context, input domain.RecordInput) error {
	if err := validateInput(s.validate, input); err != nil {
		metrics.ValidationRejections.Inc()
		logger.FromContext(ctx).Info(LogMsgValidationRejected, "error", err)
		return err
	}
	return nil
}

// recordKey names the unique (serialNumber, type) pair for in-process locking.
// Writers from other processes are still caught by the store's unique index.
func recordKey(input domain.RecordInput) string {
	return input.SerialNumber + "\x00" + input.Type
}

// ensureKeyAvailable fails with ErrDuplicateKey when a record other than
// excludeID already holds the input's (serialNumber, type).
func (s *service) ensureKeyAvailable(ctx context.Context, input domain.RecordInput, excludeID string) error {
	start := time.Now()
	_, err := s.repo.FindByKey(ctx, input.SerialNumber, input.Type, excludeID)
	switch {
	case err == nil:
		metrics.ObserveStoreOperation(OpFindByKey, start, nil)
		return s.duplicate(ctx, input, metrics.GuardPrecheck)
	case errors.Is(err, domain.ErrNotFound):
		metrics.ObserveStoreOperation(OpFindByKey, start, nil)
		return nil
	default:
		metrics.ObserveStoreOperation(OpFindByKey, start, err)
		return s.internal(ctx, OpFindByKey, err)
	}
}

func (s *service) duplicate(ctx context.Context, input domain.RecordInput, guard string) error {
	metrics.DuplicateRejections.WithLabelValues(guard).Inc()
	logger.FromContext(ctx).Info(LogMsgDuplicateRejected,
		"serial_number", input.SerialNumber, "type", input.Type, "guard", guard)
	return domain.ErrDuplicateKey
}

// internal logs a store failure and hides it behind ErrInternal
func (s *service) internal(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Error(LogMsgStoreFailure, "operation", op, "error", err)
	return fmt.Errorf("%w: %s: %w", domain.ErrInternal, op, err)
}

func (s *service) purgeCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Purge()
	logger.FromContext(ctx).Debug(LogMsgSearchCachePurged)
}
