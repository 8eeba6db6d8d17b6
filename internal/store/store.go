// Package store persists transaction records and notifies subscribers
// about changes to an owner's record set.
package store

import (
	"errors"
	"sync"

	"github.com/agentcash/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ChangeFunc receives the full current record set of an owner on every
// change, including the initial load. The store never sends diffs.
type ChangeFunc func(records []models.Transaction)

// ErrorFunc receives errors that occur on the subscription, e.g. a
// failing read. Receiving an error does not end the subscription.
type ErrorFunc func(err error)

// CancelFunc tears down a subscription. It is idempotent: calling it
// more than once is a no-op.
type CancelFunc func()

var ErrOwnerRequired = errors.New("an owner ID must be set")

// RecordStore is the append-only transaction collection per owner.
//
// No ordering, filtering or indexing is expected of implementations;
// all ordering happens during ledger recomputation.
type RecordStore interface {
	// Subscribe registers the callbacks for the owner's collection and
	// immediately delivers the current record set.
	Subscribe(ownerID string, onChange ChangeFunc, onError ErrorFunc) (CancelFunc, error)

	// Insert writes exactly one new record with a store-assigned ID and
	// creation timestamp, then notifies all subscribers of the owner.
	Insert(ownerID string, record models.Transaction) (uuid.UUID, error)
}

// Store is the gorm backed RecordStore.
type Store struct {
	db *gorm.DB

	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]subscriber
}

type subscriber struct {
	onChange ChangeFunc
	onError  ErrorFunc
}

// New returns a Store using the database handle.
func New(db *gorm.DB) *Store {
	return &Store{
		db:   db,
		subs: make(map[string]map[uint64]subscriber),
	}
}

// Subscribe implements RecordStore.
//
// The initial record set is delivered synchronously before Subscribe
// returns. If the initial read fails, the error is delivered to onError
// and the subscription stays active.
func (s *Store) Subscribe(ownerID string, onChange ChangeFunc, onError ErrorFunc) (CancelFunc, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	if s.subs[ownerID] == nil {
		s.subs[ownerID] = make(map[uint64]subscriber)
	}
	s.subs[ownerID][id] = subscriber{onChange: onChange, onError: onError}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs[ownerID], id)
			s.mu.Unlock()
		})
	}

	// Initial load
	records, err := s.records(ownerID)
	if err != nil {
		onError(err)
		return cancel, nil
	}
	onChange(records)

	return cancel, nil
}

// Insert implements RecordStore.
func (s *Store) Insert(ownerID string, record models.Transaction) (uuid.UUID, error) {
	if ownerID == "" {
		return uuid.Nil, ErrOwnerRequired
	}

	record.OwnerID = ownerID
	err := s.db.Create(&record).Error
	if err != nil {
		return uuid.Nil, err
	}

	s.notify(ownerID)
	return record.ID, nil
}

// records reads the full record set for an owner.
func (s *Store) records(ownerID string) ([]models.Transaction, error) {
	var records []models.Transaction
	err := s.db.Where(&models.Transaction{OwnerID: ownerID}).Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// notify delivers the full current record set to every subscriber of
// the owner. A failing read is delivered to the error callbacks instead,
// so subscribers keep their last known state.
func (s *Store) notify(ownerID string) {
	s.mu.Lock()
	targets := make([]subscriber, 0, len(s.subs[ownerID]))
	for _, sub := range s.subs[ownerID] {
		targets = append(targets, sub)
	}
	s.mu.Unlock()

	if len(targets) == 0 {
		return
	}

	records, err := s.records(ownerID)
	if err != nil {
		log.Error().Err(err).Str("owner", ownerID).Msg("store: reading records for notification failed")
		for _, sub := range targets {
			sub.onError(err)
		}
		return
	}

	for _, sub := range targets {
		sub.onChange(records)
	}
}
