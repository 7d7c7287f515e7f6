package models

import (
	"time"

	"github.com/Razafimahaleo/appresto/errs"
)

type OrderStatus string

const (
	// Order statuses (kitchen flow, forward-only)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, kitchen has not started yet
	OrderStatusPreparing OrderStatus = "preparing" // Kitchen started preparation
	OrderStatusReady     OrderStatus = "ready"     // Ready for pickup by the cashier/waiter
	OrderStatusDelivered OrderStatus = "delivered" // Served to the table, terminal
)

// next holds the single allowed forward step per status. Delivered is
// terminal and has no entry.
var next = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusDelivered,
}

// CanTransition reports whether an order may move from one status to the
// other. Skipping a step or going backwards is never allowed; the database
// does not enforce this, so every status write must be gated here first.
func CanTransition(from, to OrderStatus) bool {
	n, ok := next[from]
	return ok && n == to
}

// TransitionUpdates computes the column writes for one lifecycle step.
// Every step refreshes updated_at; delivered_at is stamped exactly once, on
// the step into delivered, and no other step touches it.
func TransitionUpdates(current Order, to OrderStatus, now time.Time) (map[string]interface{}, error) {
	if !CanTransition(current.Status, to) {
		return nil, errs.Conflictf("cannot transition order from %s to %s", current.Status, to)
	}

	updates := map[string]interface{}{
		"status":     to,
		"updated_at": now,
	}
	if to == OrderStatusDelivered {
		updates["delivered_at"] = now
	}
	return updates, nil
}

type Order struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	TableID     string      `gorm:"index;not null" json:"tableId"`
	TableName   string      `json:"tableName"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TotalPrice  float64     `json:"totalPrice"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	DeliveredAt *time.Time  `json:"deliveredAt,omitempty"`
}

// OrderItem lines are immutable once the order is created; only the parent
// order's status and timestamps ever change.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index" json:"-"`
	MenuID    string  `json:"menuId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
	Notes     string  `json:"notes,omitempty"`
}

// Active reports whether the order still occupies its table.
func (o Order) Active() bool {
	return o.Status != OrderStatusDelivered
}

// ItemsTotal computes the order total from its lines. It is evaluated once
// at creation time and stored; lines never change afterwards.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
