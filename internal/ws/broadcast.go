package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mowtheair/jicofo/internal/jibri"
	"github.com/mowtheair/jicofo/internal/stats"
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *client {
	c := &client{
		conn: conn,
		send: make(chan []byte, 64),
	}
	go c.writePump()
	return c
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (c *client) close() {
	close(c.send)
}

// Broadcaster pushes stats snapshots and failure notices to connected
// dashboard clients.
type Broadcaster struct {
	mu         sync.RWMutex
	clients    map[*client]bool
	aggregator *stats.Aggregator
	interval   time.Duration
}

func NewBroadcaster(aggregator *stats.Aggregator, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		clients:    make(map[*client]bool),
		aggregator: aggregator,
		interval:   interval,
	}
}

// Run broadcasts a fresh snapshot on every tick and relays failure
// events as they arrive, until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context, failures <-chan jibri.FailureEvent) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-failures:
			if !ok {
				return
			}
			if ev.Kind == nil || !ev.Kind.Valid() {
				continue
			}
			b.broadcast(WSMessage{
				Type:    MsgFailure,
				Payload: FailurePayload{Kind: *ev.Kind},
			})
		case <-ticker.C:
			b.broadcastStats()
		}
	}
}

func (b *Broadcaster) AddClient(conn *websocket.Conn) *client {
	c := newClient(conn)

	b.mu.Lock()
	b.clients[c] = true
	b.mu.Unlock()

	msg := WSMessage{
		Type:    MsgStats,
		Payload: StatsPayload{Stats: b.aggregator.Snapshot()},
	}
	data, _ := json.Marshal(msg)

	select {
	case c.send <- data:
	default:
		// Client too slow, drop the snapshot
	}

	return c
}

func (b *Broadcaster) RemoveClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

func (b *Broadcaster) broadcastStats() {
	b.broadcast(WSMessage{
		Type:    MsgStats,
		Payload: StatsPayload{Stats: b.aggregator.Snapshot()},
	})
}

func (b *Broadcaster) broadcast(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}

	b.mu.RLock()
	clients := make([]*client, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			// Client can't keep up, disconnect it
			log.Printf("ws client too slow, disconnecting")
			b.RemoveClient(c)
		}
	}
}

func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}
