// Package domain contains the core data types for the guestbook service.
// It has zero external dependencies and is imported by every other internal
// package (store, service, handler).
package domain

// BookingEntry is one guestbook entry: who is staying and from when to when.
//
// It is an immutable value. Two entries are equal (==) when all three fields
// are equal, and duplicates are legal and indistinguishable. The type does not
// validate itself: callers reject blank names and missing dates before
// constructing one, and departure-before-arrival is not checked anywhere.
type BookingEntry struct {
	Name          string
	ArrivalDate   Date
	DepartureDate Date
}

// NewBookingEntry builds a BookingEntry. It cannot fail.
func NewBookingEntry(name string, arrival, departure Date) BookingEntry {
	return BookingEntry{Name: name, ArrivalDate: arrival, DepartureDate: departure}
}
