package notify

import (
	"testing"

	"github.com/Razafimahaleo/appresto/models"
)

func order(id string, status models.OrderStatus) models.Order {
	return models.Order{ID: id, Status: status}
}

func TestNoFireOnFirstSnapshot(t *testing.T) {
	tr := NewReadyTracker()

	// Order already ready at subscribe time must not ring.
	if got := tr.Observe([]models.Order{order("o1", models.OrderStatusReady)}); len(got) != 0 {
		t.Fatalf("fired on initial snapshot: %v", got)
	}
}

func TestFiresOncePerTransition(t *testing.T) {
	tr := NewReadyTracker()

	tr.Observe([]models.Order{order("o1", models.OrderStatusPreparing)})

	got := tr.Observe([]models.Order{order("o1", models.OrderStatusReady)})
	if len(got) != 1 || got[0] != "o1" {
		t.Fatalf("expected fire for o1, got %v", got)
	}

	// Repeated ready snapshots stay silent.
	if got := tr.Observe([]models.Order{order("o1", models.OrderStatusReady)}); len(got) != 0 {
		t.Fatalf("fired twice: %v", got)
	}
}

func TestNewOrderAppearingReadyDoesNotFire(t *testing.T) {
	tr := NewReadyTracker()
	tr.Observe([]models.Order{order("o1", models.OrderStatusPending)})

	// o2 enters the snapshot already ready; its transition was never observed.
	got := tr.Observe([]models.Order{
		order("o1", models.OrderStatusPending),
		order("o2", models.OrderStatusReady),
	})
	if len(got) != 0 {
		t.Fatalf("fired for unseen order: %v", got)
	}
}

func TestMultipleOrdersFireIndependently(t *testing.T) {
	tr := NewReadyTracker()
	tr.Observe([]models.Order{
		order("o1", models.OrderStatusPending),
		order("o2", models.OrderStatusPreparing),
	})

	got := tr.Observe([]models.Order{
		order("o1", models.OrderStatusPreparing),
		order("o2", models.OrderStatusReady),
	})
	if len(got) != 1 || got[0] != "o2" {
		t.Fatalf("expected fire for o2 only, got %v", got)
	}
}

func TestResetForgetsHistory(t *testing.T) {
	tr := NewReadyTracker()
	tr.Observe([]models.Order{order("o1", models.OrderStatusPreparing)})
	tr.Reset()

	// After reset this is a first snapshot again.
	if got := tr.Observe([]models.Order{order("o1", models.OrderStatusReady)}); len(got) != 0 {
		t.Fatalf("fired after reset: %v", got)
	}
}
