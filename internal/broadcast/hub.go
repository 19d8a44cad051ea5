package broadcast

import "sync"

// Event is a change notification published after a key result update.
type Event struct {
	Type        string  `json:"type"`
	ObjectiveID uint64  `json:"objectiveId"`
	KeyResultID uint64  `json:"keyResultId"`
	Progress    float64 `json:"progress"`
}

// EventKeyResultUpdate is the only event type published today.
const EventKeyResultUpdate = "keyresult_update"

// Subscriber receives events on C until it is unsubscribed or the hub closes.
type Subscriber struct {
	C chan Event
}

// Hub fans events out to an open set of subscribers. It is constructed at
// process start, passed by reference to the services that publish, and
// closed at shutdown. Publishing is fire-and-forget: a subscriber that cannot
// keep up is pruned, never retried, and never blocks the publisher.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscriber]struct{}
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

// Subscribe registers a new subscriber with a buffered event channel.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{C: make(chan Event, 16)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(sub.C)
		return sub
	}
	h.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a subscriber and closes its channel. Unknown
// subscribers are ignored.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.C)
	}
}

// Publish delivers the event to every live subscriber without blocking.
// Subscribers whose buffers are full are treated as failed and pruned.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for sub := range h.subs {
		select {
		case sub.C <- event:
		default:
			delete(h.subs, sub)
			close(sub.C)
		}
	}
}

// Close shuts the hub down and closes all subscriber channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		delete(h.subs, sub)
		close(sub.C)
	}
}
