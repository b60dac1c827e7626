package eventstore

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	logMsgCollectionLoaded    = "event collection loaded from storage"
	logMsgNothingPersistedYet = "no persisted event collection found, starting empty"
	logMsgEventAdded          = "event added"
	logMsgEventUpdated        = "event updated"
	logMsgEventRemoved        = "event removed"
	logMsgCollectionReplaced  = "event collection replaced"
	logMsgCollectionCleared   = "event collection cleared"
	logMsgValidationFailed    = "draft rejected by validation"
	logMsgEventNotFound       = "no event with the given id"
	logMsgPersistFailed       = "persisting the event collection failed"
	logAttrError              = "error"
	logAttrEventID            = "event_id"
	logAttrEventCount         = "event_count"
	logAttrDroppedCount       = "dropped_count"
	logAttrViolationCount     = "violation_count"
)

// Persistence is the durable side of the Store: it owns the copy of the
// collection that survives a restart. Load reports absence separately from
// failure so first runs are distinguishable from broken storage.
type Persistence interface {
	Load(ctx context.Context) (EventRecords, bool, error)
	Save(ctx context.Context, records EventRecords) error
}

// Store holds the canonical in-memory event collection and is the only
// writer to its Persistence. There is no ordering invariant on the
// collection itself; all ordering is a derived view (see SortRecords).
//
// Every mutation validates first, mutates memory second, persists third -
// and rolls the memory change back if persisting fails, so the in-memory
// and durable copies never drift apart.
type Store struct {
	mu          sync.Mutex
	records     EventRecords
	persistence Persistence
	logger      Logger
	clock       func() time.Time
	newID       func() string
}

// StoreOption defines a functional option for configuring a Store.
type StoreOption func(*Store) error

// WithLogger sets the logger for the Store.
func WithLogger(logger Logger) StoreOption {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithClock sets the time source used for validation and timestamps.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) error {
		s.clock = clock
		return nil
	}
}

// WithIDGenerator sets the id generator used for new records.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) error {
		s.newID = newID
		return nil
	}
}

// NewStore creates a new Store writing through the given Persistence,
// with optional configuration.
func NewStore(persistence Persistence, options ...StoreOption) (*Store, error) {
	if persistence == nil {
		return nil, ErrNilPersistence
	}

	s := &Store{
		records:     make(EventRecords, 0),
		persistence: persistence,
		clock:       time.Now,
		newID:       uuid.NewString,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// LoadFromStorage hydrates the in-memory collection from the Persistence.
// When nothing has been persisted yet the store simply starts empty.
func (s *Store) LoadFromStorage(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, found, err := s.persistence.Load(ctx)
	if err != nil {
		return err
	}

	if !found {
		s.logDebug(logMsgNothingPersistedYet)
		return nil
	}

	s.records = records
	s.logInfo(logMsgCollectionLoaded, logAttrEventCount, len(records))

	return nil
}

// List returns a copy of the full current collection in storage order.
func (s *Store) List() EventRecords {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.records)
}

// Add validates the draft and, on success, appends a new record with a fresh
// unique id and CreatedAt == UpdatedAt == now, then persists the collection.
// On validation failure it returns a *ValidationFailedError and mutates
// nothing.
func (s *Store) Add(ctx context.Context, draft EventDraft) (EventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if violations := Validate(draft, s.clock()); len(violations) > 0 {
		s.logDebug(logMsgValidationFailed, logAttrViolationCount, len(violations))
		return EventRecord{}, &ValidationFailedError{Violations: violations}
	}

	now := s.clock()
	record := s.recordFromDraft(draft)
	record.ID = s.newID()
	record.CreatedAt = now
	record.UpdatedAt = now

	s.records = append(s.records, record)

	if err := s.persist(ctx); err != nil {
		s.records = s.records[:len(s.records)-1]
		return EventRecord{}, err
	}

	s.logInfo(logMsgEventAdded, logAttrEventID, record.ID)

	return record, nil
}

// Update validates the draft and, on success, replaces the record with the
// matching id in place, carrying the original CreatedAt forward and stamping
// a new UpdatedAt, then persists the collection. A missing id fails with
// ErrNotFound - it is never treated as an append.
func (s *Store) Update(ctx context.Context, id string, draft EventDraft) (EventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logDebug(logMsgEventNotFound, logAttrEventID, id)
		return EventRecord{}, ErrNotFound
	}

	if violations := Validate(draft, s.clock()); len(violations) > 0 {
		s.logDebug(logMsgValidationFailed, logAttrViolationCount, len(violations))
		return EventRecord{}, &ValidationFailedError{Violations: violations}
	}

	previous := s.records[idx]

	record := s.recordFromDraft(draft)
	record.ID = previous.ID
	record.CreatedAt = previous.CreatedAt
	record.UpdatedAt = s.clock()

	s.records[idx] = record

	if err := s.persist(ctx); err != nil {
		s.records[idx] = previous
		return EventRecord{}, err
	}

	s.logInfo(logMsgEventUpdated, logAttrEventID, record.ID)

	return record, nil
}

// Remove deletes the record with the matching id and persists the collection.
// A missing id fails with ErrNotFound.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logDebug(logMsgEventNotFound, logAttrEventID, id)
		return ErrNotFound
	}

	previous := s.records[idx]
	s.records = slices.Delete(s.records, idx, idx+1)

	if err := s.persist(ctx); err != nil {
		s.records = slices.Insert(s.records, idx, previous)
		return err
	}

	s.logInfo(logMsgEventRemoved, logAttrEventID, id)

	return nil
}

// ReplaceAll substitutes the whole collection with the incoming records,
// keeping only the well-formed ones (see EventRecord.IsWellFormed) and
// discarding the rest. It fails with ErrEmptyImport - and mutates nothing -
// when no valid record remains. Returns the number of records kept.
func (s *Store) ReplaceAll(ctx context.Context, incoming EventRecords) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make(EventRecords, 0, len(incoming))
	for _, record := range incoming {
		if record.IsWellFormed() {
			kept = append(kept, record)
		}
	}

	if len(kept) == 0 {
		return 0, ErrEmptyImport
	}

	previous := s.records
	s.records = kept

	if err := s.persist(ctx); err != nil {
		s.records = previous
		return 0, err
	}

	s.logInfo(logMsgCollectionReplaced,
		logAttrEventCount, len(kept),
		logAttrDroppedCount, len(incoming)-len(kept))

	return len(kept), nil
}

// Clear empties the collection and persists the empty state.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.records
	s.records = make(EventRecords, 0)

	if err := s.persist(ctx); err != nil {
		s.records = previous
		return err
	}

	s.logInfo(logMsgCollectionCleared)

	return nil
}

func (s *Store) recordFromDraft(draft EventDraft) EventRecord {
	return EventRecord{
		Title:       strings.TrimSpace(draft.Title),
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		Duration:    draft.Duration,
		Location:    strings.TrimSpace(draft.Location),
		Tag:         draft.Tag,
		Description: strings.TrimSpace(draft.Description),
	}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(r EventRecord) bool {
		return r.ID == id
	})
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.persistence.Save(ctx, slices.Clone(s.records)); err != nil {
		if s.logger != nil {
			s.logger.Error(logMsgPersistFailed, logAttrError, err.Error())
		}

		return err
	}

	return nil
}

func (s *Store) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Store) logDebug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
