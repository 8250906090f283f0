package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/guestbook/backend/internal/domain"
)

// displayLayout renders dates the way the guestbook list shows them.
const displayLayout = "02.01.2006"

// BookingInput is the request body of POST and DELETE /bookings.
// Dates are pointers so a missing field can be told apart from a zero date.
type BookingInput struct {
	Name          string              `json:"name"`
	ArrivalDate   *openapi_types.Date `json:"arrival_date"`
	DepartureDate *openapi_types.Date `json:"departure_date"`
}

// Booking is the wire form of a domain.BookingEntry.
type Booking struct {
	Name          string             `json:"name"`
	ArrivalDate   openapi_types.Date `json:"arrival_date"`
	DepartureDate openapi_types.Date `json:"departure_date"`
	// Display is the date range formatted for humans, e.g. "10.01.2024 - 12.01.2024".
	Display string `json:"display"`
}

// BookingList is the body of GET /bookings and of every /bookings/watch message.
type BookingList struct {
	Data  []Booking `json:"data"`
	Count int       `json:"count"`
}

// ListBookings handles GET /bookings.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	entries, err := s.bookings.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entriesToResponse(entries))
}

// CreateBooking handles POST /bookings.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.decodeEntry(w, r)
	if !ok {
		return
	}

	created, err := s.bookings.Add(r.Context(), entry)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entryToResponse(created))
}

// DeleteBooking handles DELETE /bookings.
// The body names the entry by value; every equal entry is removed. Deleting
// an entry that does not exist still returns 204.
func (s *Server) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.decodeEntry(w, r)
	if !ok {
		return
	}

	if err := s.bookings.Delete(r.Context(), entry); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeEntry reads a BookingInput from the request body. On failure it has
// already written the response and returns false.
func (s *Server) decodeEntry(w http.ResponseWriter, r *http.Request) (domain.BookingEntry, bool) {
	var body BookingInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, requestBody(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)))
		case errors.Is(err, io.EOF):
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body is required"))
		default:
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		}
		return domain.BookingEntry{}, false
	}
	return requestToEntry(body), true
}

// --- mapping helpers --------------------------------------------------------

// requestToEntry converts a BookingInput into a domain.BookingEntry.
// Missing dates become zero Dates; the service decides whether that is allowed.
func requestToEntry(body BookingInput) domain.BookingEntry {
	var arrival, departure domain.Date
	if body.ArrivalDate != nil {
		arrival = domain.DateOf(body.ArrivalDate.Time)
	}
	if body.DepartureDate != nil {
		departure = domain.DateOf(body.DepartureDate.Time)
	}
	return domain.NewBookingEntry(body.Name, arrival, departure)
}

// entryToResponse converts a domain.BookingEntry into its wire form.
func entryToResponse(e domain.BookingEntry) Booking {
	return Booking{
		Name:          e.Name,
		ArrivalDate:   openapi_types.Date{Time: e.ArrivalDate.Time()},
		DepartureDate: openapi_types.Date{Time: e.DepartureDate.Time()},
		Display:       formatRange(e),
	}
}

// entriesToResponse converts a snapshot into a BookingList.
// Data is always a JSON array, never null.
func entriesToResponse(entries []domain.BookingEntry) BookingList {
	data := make([]Booking, len(entries))
	for i, e := range entries {
		data[i] = entryToResponse(e)
	}
	return BookingList{Data: data, Count: len(data)}
}

// formatRange renders "dd.MM.yyyy - dd.MM.yyyy".
func formatRange(e domain.BookingEntry) string {
	return e.ArrivalDate.Format(displayLayout) + " - " + e.DepartureDate.Format(displayLayout)
}
