// Package realtime fans out change notifications to websocket subscribers.
// Writers publish a small event after every mutation; each websocket
// connection subscribes to the topics it renders and re-queries on receipt,
// so a fresh snapshot always reaches every open view.
package realtime

import "sync"

const (
	TopicOrders = "orders"
	TopicMenus  = "menus"
	TopicTables = "tables"
	TopicChat   = "chat"
)

// TableOrdersTopic scopes order events to a single table's stream.
func TableOrdersTopic(tableID string) string {
	return TopicOrders + "/table/" + tableID
}

type Event struct {
	Topic string      `json:"topic"`
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
}

// Subscription delivers events on C until Close is called. A subscriber
// that stops draining C loses events rather than blocking publishers.
type Subscription struct {
	C chan Event

	topic string
	hub   *Hub
	once  sync.Once
}

// Close detaches the subscription. Idempotent.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		if set, ok := s.hub.subs[s.topic]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(s.hub.subs, s.topic)
			}
		}
		s.hub.mu.Unlock()
		close(s.C)
	})
}

type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

const subscriptionBuffer = 16

func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		C:     make(chan Event, subscriptionBuffer),
		topic: topic,
		hub:   h,
	}
	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[*Subscription]struct{})
	}
	h.subs[topic][sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Publish delivers the event to every current subscriber of the topic.
// Sends never block: a full buffer drops the event for that subscriber,
// which is fine because consumers re-query on every wakeup anyway.
func (h *Hub) Publish(topic, eventType string, data interface{}) {
	ev := Event{Topic: topic, Type: eventType, Data: data}
	h.mu.Lock()
	for sub := range h.subs[topic] {
		select {
		case sub.C <- ev:
		default:
		}
	}
	h.mu.Unlock()
}
