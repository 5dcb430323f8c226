package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const sendBuffer = 64

type Subscriber struct {
	filter Filter
	send   chan []byte
}

// C delivers encoded events. It is closed when the subscriber is dropped.
func (s *Subscriber) C() <-chan []byte { return s.send }

// Hub fans events out to the local websocket subscribers.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
	log  *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{}), log: log}
}

func (h *Hub) Subscribe(f Filter) *Subscriber {
	s := &Subscriber{filter: f, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(s)
}

// remove must be called with mu held.
func (h *Hub) remove(s *Subscriber) {
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.send)
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Broadcast delivers ev to every matching subscriber. A subscriber whose
// buffer is full is dropped.
func (h *Hub) Broadcast(ev Event) {
	fields := ev.fields()
	if fields == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		if !s.filter.matches(ev.Table, fields) {
			continue
		}
		select {
		case s.send <- data:
		default:
			h.log.Warn("realtime subscriber too slow, dropping",
				zap.String("table", s.filter.Table),
				zap.String("column", s.filter.Column),
			)
			h.remove(s)
		}
	}
}
