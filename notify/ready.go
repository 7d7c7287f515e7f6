// Package notify detects order-ready transitions across consecutive
// subscription snapshots so the client app can ring exactly once per order.
package notify

import "github.com/Razafimahaleo/appresto/models"

// ReadyTracker remembers the last observed status per order id. One tracker
// belongs to one subscription; tear it down with the subscription so a
// remounted view never inherits stale statuses.
type ReadyTracker struct {
	prev map[string]models.OrderStatus
}

func NewReadyTracker() *ReadyTracker {
	return &ReadyTracker{prev: make(map[string]models.OrderStatus)}
}

// Observe records the snapshot and returns the ids of orders that just
// flipped into ready. An order already ready when first seen does not fire:
// only a genuine transition between two observed snapshots counts.
func (t *ReadyTracker) Observe(orders []models.Order) []string {
	var readyIDs []string
	for _, o := range orders {
		last, seen := t.prev[o.ID]
		t.prev[o.ID] = o.Status
		if o.Status == models.OrderStatusReady && seen && last != models.OrderStatusReady {
			readyIDs = append(readyIDs, o.ID)
		}
	}
	return readyIDs
}

// Reset drops all tracked statuses.
func (t *ReadyTracker) Reset() {
	t.prev = make(map[string]models.OrderStatus)
}
