package handler

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

// watchWriteWait bounds how long a single snapshot write may block.
const watchWriteWait = 10 * time.Second

// WatchBookings handles GET /bookings/watch.
// It upgrades to a websocket and sends a BookingList text message with the
// current snapshot, then one per change, until the client goes away.
// Messages from the client are read and discarded.
func (s *Server) WatchBookings(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		s.log.WarnContext(r.Context(), "watch upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	// Clear any read deadline inherited from the http.Server timeouts; the
	// stream is long-lived.
	_ = conn.SetReadDeadline(time.Time{})

	// A hijacked connection does not cancel r.Context() when the peer leaves,
	// so the read loop below owns cancellation.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	watcher := s.bookings.Watch(ctx)
	log := s.log.With("subscription_id", watcher.ID.String(), "request_id", chimiddleware.GetReqID(r.Context()))
	log.InfoContext(ctx, "watch opened")
	defer log.Info("watch closed")

	for snapshot := range watcher.C {
		_ = conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
		if err := conn.WriteJSON(entriesToResponse(snapshot)); err != nil {
			log.DebugContext(ctx, "watch write failed", "error", err)
			return
		}
	}

	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
}
