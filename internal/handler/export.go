// Package handler — export.go implements GET /bookings/export.
// Returns every booking as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/guestbook/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{"position", "name", "arrival_date", "departure_date", "display"}

// ExportRow is one row of the JSON export.
type ExportRow struct {
	Position int `json:"position"`
	Booking
}

// GetExport implements GET /bookings/export.
// Use ?format=csv to receive CSV; default (or ?format=json) is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("format must be json or csv"))
		return
	}

	entries, err := s.bookings.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if format == "csv" {
		writeCSV(w, entries)
		return
	}
	writeJSON(w, http.StatusOK, buildJSONRows(entries))
}

// buildJSONRows converts a snapshot to export rows. Positions are 1-based
// and follow insertion order.
func buildJSONRows(entries []domain.BookingEntry) []ExportRow {
	out := make([]ExportRow, 0, len(entries))
	for i, e := range entries {
		out = append(out, ExportRow{Position: i + 1, Booking: entryToResponse(e)})
	}
	return out
}

// writeCSV encodes the snapshot as CSV with a header row.
func writeCSV(w http.ResponseWriter, entries []domain.BookingEntry) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for i, e := range entries {
		//nolint:errcheck
		cw.Write(entryToCSVRecord(i+1, e))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// entryToCSVRecord encodes a booking as a flat string slice.
func entryToCSVRecord(position int, e domain.BookingEntry) []string {
	return []string{
		strconv.Itoa(position),
		e.Name,
		e.ArrivalDate.String(),
		e.DepartureDate.String(),
		formatRange(e),
	}
}
