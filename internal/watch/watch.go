// Package watch keeps derived ledger snapshots in sync with the record
// store. One Watcher owns one subscription; the Manager hands out at
// most one Watcher per owner.
package watch

import (
	"sync"

	"github.com/agentcash/backend/internal/ledger"
	"github.com/agentcash/backend/internal/models"
	"github.com/agentcash/backend/internal/store"
	"github.com/agentcash/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// Watcher subscribes to an owner's record collection and recomputes the
// derived ledger on every notification.
//
// The snapshot is replaced atomically: readers either see the previous
// complete snapshot or the new complete one, never a partial state. When
// the store reports an error, the last good snapshot is retained and the
// error is exposed via LastError; stale but consistent data beats a
// blank ledger.
type Watcher struct {
	ownerID string
	cancel  store.CancelFunc

	mu       sync.RWMutex
	snapshot ledger.Snapshot
	err      error

	nextSub uint64
	subs    map[uint64]chan ledger.Snapshot
}

// Start subscribes to the owner's records and returns the Watcher owning
// the subscription.
func Start(s store.RecordStore, ownerID string) (*Watcher, error) {
	w := &Watcher{
		ownerID:  ownerID,
		snapshot: ledger.Recompute(nil, types.Today()),
		subs:     make(map[uint64]chan ledger.Snapshot),
	}

	cancel, err := s.Subscribe(ownerID, w.onChange, w.onError)
	if err != nil {
		return nil, err
	}

	w.cancel = cancel
	return w, nil
}

func (w *Watcher) onChange(records []models.Transaction) {
	snapshot := ledger.Recompute(records, types.Today())
	recomputations.Inc()

	if n := snapshot.Unclassified(); n > 0 {
		unclassifiedRecords.Set(float64(n))
		log.Warn().
			Str("owner", w.ownerID).
			Int("records", n).
			Msg("watch: ledger contains records with unrecognized kinds")
	}

	w.mu.Lock()
	w.snapshot = snapshot
	w.err = nil
	w.publish(snapshot)
	w.mu.Unlock()
}

// publish forwards the snapshot to all update subscribers. Slow readers
// only ever see the latest snapshot, intermediate ones are dropped.
// Must be called with w.mu held.
func (w *Watcher) publish(snapshot ledger.Snapshot) {
	for _, ch := range w.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

// Updates returns a channel receiving every newly derived snapshot and
// a function releasing the subscription.
func (w *Watcher) Updates() (<-chan ledger.Snapshot, func()) {
	w.mu.Lock()
	w.nextSub++
	id := w.nextSub
	ch := make(chan ledger.Snapshot, 1)
	w.subs[id] = ch
	w.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			w.mu.Unlock()
		})
	}

	return ch, cancel
}

func (w *Watcher) onError(err error) {
	log.Error().Err(err).Str("owner", w.ownerID).Msg("watch: subscription error")

	w.mu.Lock()
	w.err = err
	w.mu.Unlock()
}

// Snapshot returns the last complete snapshot.
//
// When the calendar day has changed since the last notification, the
// snapshot is recomputed from its own rows first so that the daily fee
// total rolls over at midnight without requiring a store change.
func (w *Watcher) Snapshot() ledger.Snapshot {
	today := types.Today()

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.snapshot.Today.Equal(today) {
		records := make([]models.Transaction, len(w.snapshot.Rows))
		for i, row := range w.snapshot.Rows {
			records[i] = row.Transaction
		}
		w.snapshot = ledger.Recompute(records, today)
		recomputations.Inc()
	}

	return w.snapshot
}

// LastError returns the last subscription error, or nil after a
// successful notification.
func (w *Watcher) LastError() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.err
}

// OwnerID returns the owner the Watcher is subscribed for.
func (w *Watcher) OwnerID() string {
	return w.ownerID
}

// Stop cancels the subscription. Calling it more than once is a no-op.
func (w *Watcher) Stop() {
	w.cancel()
}
