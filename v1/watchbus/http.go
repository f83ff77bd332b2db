package watchbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mirkobrombin/go-mutex/v1/syncbus"
)

// watch subscribes to the key of r. The returned stop function must be
// called once streaming ends.
func watch(bus syncbus.Bus, r *http.Request) (<-chan syncbus.Event, context.Context, func(), error) {
	key := r.URL.Query().Get("key")
	if key == "" {
		return nil, nil, nil, errMissingKey
	}
	ctx, cancel := context.WithCancel(r.Context())
	ch, err := bus.Subscribe(ctx, key)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	stop := func() {
		cancel()
		_ = bus.Unsubscribe(context.Background(), key, ch)
	}
	return ch, ctx, stop, nil
}

type httpError string

func (e httpError) Error() string { return string(e) }

const errMissingKey = httpError("missing key")

func fail(w http.ResponseWriter, err error) {
	if err == errMissingKey {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// SSEHandler streams lock events over Server-Sent Events. Headers are
// flushed once the subscription is in place.
func SSEHandler(bus syncbus.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "stream unsupported", http.StatusInternalServerError)
			return
		}
		ch, ctx, stop, err := watch(bus, r)
		if err != nil {
			fail(w, err)
			return
		}
		defer stop()
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return
				}
				payload, err := json.Marshal(ev)
				if err != nil {
					slog.Warn("mutex: encode lock event failed", "key", ev.Key, "error", err)
					continue
				}
				if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, payload); err != nil {
					return
				}
				flusher.Flush()
			case <-ctx.Done():
				return
			}
		}
	}
}

var upgrader = websocket.Upgrader{}

// WebSocketHandler streams lock events over WebSocket. The connection is
// upgraded once the subscription is in place.
func WebSocketHandler(bus syncbus.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ch, ctx, stop, err := watch(bus, r)
		if err != nil {
			fail(w, err)
			return
		}
		defer stop()
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}
