// Package watchbus streams the lock events of a syncbus.Bus to HTTP
// clients, over Server-Sent Events or WebSocket. The watched key is taken
// from the "key" query parameter and every event is sent as one JSON
// object.
package watchbus
