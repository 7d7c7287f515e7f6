package models

import (
	"testing"
	"time"

	"github.com/Razafimahaleo/appresto/errs"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from  OrderStatus
		to    OrderStatus
		valid bool
	}{
		{OrderStatusPending, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusReady, false},     // skip
		{OrderStatusPending, OrderStatusDelivered, false}, // skip
		{OrderStatusPreparing, OrderStatusPending, false}, // backward
		{OrderStatusReady, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusReady, false}, // terminal
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusPending, false}, // self
		{OrderStatus("unknown"), OrderStatusPreparing, false},
		{OrderStatusPending, OrderStatus("unknown"), false},
	}

	for _, tt := range cases {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("CanTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestTransitionUpdatesStampsDeliveredAtOnlyOnDelivery(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

	cases := []struct {
		from        OrderStatus
		to          OrderStatus
		deliveredAt bool
	}{
		{OrderStatusPending, OrderStatusPreparing, false},
		{OrderStatusPreparing, OrderStatusReady, false},
		{OrderStatusReady, OrderStatusDelivered, true},
	}

	for _, tt := range cases {
		updates, err := TransitionUpdates(Order{Status: tt.from}, tt.to, now)
		if err != nil {
			t.Fatalf("TransitionUpdates(%q, %q) error: %v", tt.from, tt.to, err)
		}
		if updates["status"] != tt.to {
			t.Fatalf("status = %v, want %q", updates["status"], tt.to)
		}
		if updates["updated_at"] != now {
			t.Fatalf("updated_at = %v, want %v", updates["updated_at"], now)
		}
		if _, ok := updates["delivered_at"]; ok != tt.deliveredAt {
			t.Fatalf("%q→%q: delivered_at present=%v, want %v", tt.from, tt.to, ok, tt.deliveredAt)
		}
		if tt.deliveredAt && updates["delivered_at"] != now {
			t.Fatalf("delivered_at = %v, want %v", updates["delivered_at"], now)
		}
	}
}

func TestTransitionUpdatesRejectsInvalidSteps(t *testing.T) {
	now := time.Now()

	invalid := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusReady},       // skip
		{OrderStatusPending, OrderStatusDelivered},   // skip to terminal
		{OrderStatusPreparing, OrderStatusPending},   // backward
		{OrderStatusDelivered, OrderStatusReady},     // out of terminal
		{OrderStatusDelivered, OrderStatusDelivered}, // repeat delivery
	}

	for _, tt := range invalid {
		updates, err := TransitionUpdates(Order{Status: tt.from}, tt.to, now)
		if err == nil {
			t.Fatalf("TransitionUpdates(%q, %q) should fail", tt.from, tt.to)
		}
		if !errs.IsKind(err, errs.KindConflict) {
			t.Fatalf("TransitionUpdates(%q, %q) error kind = %v, want conflict", tt.from, tt.to, err)
		}
		if updates != nil {
			t.Fatalf("TransitionUpdates(%q, %q) returned writes on failure", tt.from, tt.to)
		}
	}
}

func TestItemsTotal(t *testing.T) {
	items := []OrderItem{
		{Name: "Pizza", Quantity: 2, UnitPrice: 9.5},
		{Name: "Cola", Quantity: 1, UnitPrice: 2.5},
	}
	if got := ItemsTotal(items); got != 21.5 {
		t.Fatalf("ItemsTotal = %v, want 21.5", got)
	}
	if got := ItemsTotal(nil); got != 0 {
		t.Fatalf("ItemsTotal(nil) = %v, want 0", got)
	}
}

func TestActive(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusPreparing, OrderStatusReady} {
		if !(Order{Status: s}).Active() {
			t.Fatalf("%q should be active", s)
		}
	}
	if (Order{Status: OrderStatusDelivered}).Active() {
		t.Fatal("delivered order should not be active")
	}
}
