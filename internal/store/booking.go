// Package store holds the in-memory booking list for the lifetime of the
// process and notifies observers whenever it changes.
// Nothing here is persisted; a restart starts from an empty list.
package store

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/pkordes/guestbook/backend/internal/domain"
)

// Observer receives the full post-mutation snapshot. The slice is a private
// copy; the observer may keep it.
type Observer func(snapshot []domain.BookingEntry)

// Subscription is the handle returned by BookingStore.Subscribe.
type Subscription struct {
	id     uuid.UUID
	fn     Observer
	active atomic.Bool
	store  *BookingStore
}

// ID identifies the subscription in logs.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Unsubscribe stops further notifications. Calling it more than once, or
// from inside the observer itself, is safe.
func (s *Subscription) Unsubscribe() {
	if !s.active.Swap(false) {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.subs = slices.DeleteFunc(s.store.subs, func(o *Subscription) bool { return o == s })
}

// BookingStore is the single shared list of booking entries.
//
// Add and Delete are serialized together with the notification they trigger,
// so observers see snapshots in mutation order and never a partial update.
// Observers run synchronously on the mutating goroutine. They may call
// Entries and Unsubscribe but must not call Add or Delete.
type BookingStore struct {
	// writeMu serializes mutate+notify sequences.
	writeMu sync.Mutex

	// mu guards entries and subs.
	mu      sync.RWMutex
	entries []domain.BookingEntry
	subs    []*Subscription
}

// New returns an empty BookingStore.
func New() *BookingStore {
	return &BookingStore{}
}

// Entries returns a copy of the current snapshot in insertion order.
// The result is never nil.
func (s *BookingStore) Entries() []domain.BookingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called after every Add and Delete.
// Observers are called in subscription order.
func (s *BookingStore) Subscribe(fn Observer) *Subscription {
	sub := &Subscription{id: uuid.New(), fn: fn, store: s}
	sub.active.Store(true)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
	return sub
}

// Add appends entry to the end of the list. Duplicates are kept.
func (s *BookingStore) Add(entry domain.BookingEntry) {
	s.mutate(func(entries []domain.BookingEntry) []domain.BookingEntry {
		return append(entries, entry)
	})
}

// Delete removes every entry equal to entry. Remaining entries keep their
// relative order. Observers are notified even when nothing matched.
func (s *BookingStore) Delete(entry domain.BookingEntry) {
	s.mutate(func(entries []domain.BookingEntry) []domain.BookingEntry {
		return slices.DeleteFunc(entries, func(e domain.BookingEntry) bool { return e == entry })
	})
}

// Watcher is a channel view of a subscription, returned by BookingStore.Watch.
type Watcher struct {
	// ID is the underlying subscription's ID.
	ID uuid.UUID

	// C delivers snapshots. It is closed when the watch context is done.
	C <-chan []domain.BookingEntry
}

// Watch streams snapshots on the returned Watcher's channel: the current one
// first, then one per mutation. The channel buffers a single snapshot; if the
// reader falls behind, older pending snapshots are replaced by the newest, so
// a slow reader never blocks Add or Delete. The channel is closed once ctx is
// done.
func (s *BookingStore) Watch(ctx context.Context) *Watcher {
	ch := make(chan []domain.BookingEntry, 1)

	// Holding writeMu makes "read current, then subscribe" atomic with
	// respect to mutations, so no change is missed or delivered out of order.
	s.writeMu.Lock()
	ch <- s.Entries()
	sub := s.Subscribe(func(snapshot []domain.BookingEntry) {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	})
	s.writeMu.Unlock()

	go func() {
		<-ctx.Done()
		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		sub.Unsubscribe()
		close(ch)
	}()

	return &Watcher{ID: sub.ID(), C: ch}
}

// mutate applies fn to a private copy of the entries, publishes the result and
// notifies every active observer with its own copy.
func (s *BookingStore) mutate(fn func([]domain.BookingEntry) []domain.BookingEntry) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.entries = fn(s.snapshotLocked())
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		if !sub.active.Load() {
			continue
		}
		sub.fn(s.Entries())
	}
}

// snapshotLocked copies the entries. Callers must hold mu.
func (s *BookingStore) snapshotLocked() []domain.BookingEntry {
	out := make([]domain.BookingEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
