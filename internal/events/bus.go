// Package events provides the in-process delivery path for Jibri
// failure notifications. The lifecycle system publishes one event per
// failed session start; the stats aggregator and the websocket
// broadcaster subscribe.
package events

import (
	"log"
	"sync"

	"github.com/mowtheair/jicofo/internal/jibri"
)

const defaultBuffer = 64

type Bus struct {
	mu   sync.RWMutex
	subs map[chan jibri.FailureEvent]bool
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[chan jibri.FailureEvent]bool),
	}
}

// Subscribe registers a new subscriber and returns its delivery
// channel. A buffer of 0 selects the default.
func (b *Bus) Subscribe(buffer int) <-chan jibri.FailureEvent {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	ch := make(chan jibri.FailureEvent, buffer)

	b.mu.Lock()
	b.subs[ch] = true
	b.mu.Unlock()

	return ch
}

// Unsubscribe removes the subscriber and closes its channel. Events
// published after Unsubscribe returns are no longer delivered to it.
func (b *Bus) Unsubscribe(ch <-chan jibri.FailureEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		if sub == ch {
			delete(b.subs, sub)
			close(sub)
			return
		}
	}
}

// Publish delivers ev to every subscriber. Publish never blocks: a
// subscriber whose buffer is full misses the event.
func (b *Bus) Publish(ev jibri.FailureEvent) {
	b.mu.RLock()
	subs := make([]chan jibri.FailureEvent, 0, len(b.subs))
	for ch := range b.subs {
		subs = append(subs, ch)
	}
	b.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
			log.Printf("events: subscriber buffer full, dropping failure event")
		}
	}
}

func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
