// Package service contains the business logic for the guestbook API.
// Services validate inputs and orchestrate the store; they know nothing
// about HTTP.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/guestbook/backend/internal/domain"
	"github.com/pkordes/guestbook/backend/internal/store"
)

// BookingStore is the subset of *store.BookingStore the service depends on.
// Defining it here lets service tests inject a fake.
type BookingStore interface {
	Entries() []domain.BookingEntry
	Add(entry domain.BookingEntry)
	Delete(entry domain.BookingEntry)
	Watch(ctx context.Context) *store.Watcher
}

// BookingService implements the guestbook operations.
type BookingService struct {
	store BookingStore
}

// NewBookingService constructs a BookingService backed by the provided store.
func NewBookingService(s BookingStore) *BookingService {
	return &BookingService{store: s}
}

// List returns all entries in insertion order.
func (s *BookingService) List(ctx context.Context) ([]domain.BookingEntry, error) {
	entries := s.store.Entries()
	if entries == nil {
		entries = []domain.BookingEntry{}
	}
	return entries, nil
}

// Add validates entry the way the booking form does and appends it.
// The name is stored as given; only a blank name is rejected.
func (s *BookingService) Add(ctx context.Context, entry domain.BookingEntry) (domain.BookingEntry, error) {
	if err := validateEntry(entry); err != nil {
		return domain.BookingEntry{}, fmt.Errorf("service.BookingService.Add: %w", err)
	}
	s.store.Add(entry)
	return entry, nil
}

// Delete removes every entry equal to entry. Deleting something that is not
// there is not an error.
func (s *BookingService) Delete(ctx context.Context, entry domain.BookingEntry) error {
	s.store.Delete(entry)
	return nil
}

// Watch streams the current snapshot followed by one snapshot per change
// until ctx is done.
func (s *BookingService) Watch(ctx context.Context) *store.Watcher {
	return s.store.Watch(ctx)
}

// validateEntry enforces the only two rules the guestbook has: a non-blank
// name and both dates selected.
func validateEntry(e domain.BookingEntry) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if e.ArrivalDate.IsZero() || e.DepartureDate.IsZero() {
		return fmt.Errorf("%w: arrival and departure dates are required", domain.ErrValidation)
	}
	return nil
}
