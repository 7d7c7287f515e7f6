package stats

import (
	"testing"
	"time"

	"github.com/Razafimahaleo/appresto/models"
)

var now = time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)

func delivered(total float64, at time.Time, items ...models.OrderItem) models.Order {
	return models.Order{
		Status:      models.OrderStatusDelivered,
		TotalPrice:  total,
		Items:       items,
		CreatedAt:   at,
		DeliveredAt: &at,
	}
}

func TestEmptyHistory(t *testing.T) {
	got := ComputeDailyStats(nil, now)
	if got.Revenue != 0 || got.OrderCount != 0 || got.TopDish != nil {
		t.Fatalf("empty history: %+v", got)
	}
}

func TestExcludesOtherDaysAndNonDelivered(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	orders := []models.Order{
		delivered(10, yesterday, models.OrderItem{Name: "Pizza", Quantity: 1}),
		{Status: models.OrderStatusReady, TotalPrice: 50, CreatedAt: now,
			Items: []models.OrderItem{{Name: "Pizza", Quantity: 5}}},
		delivered(19, now, models.OrderItem{Name: "Pizza", Quantity: 2}),
	}

	got := ComputeDailyStats(orders, now)
	if got.Revenue != 19 {
		t.Fatalf("revenue = %v, want 19", got.Revenue)
	}
	if got.OrderCount != 1 {
		t.Fatalf("orderCount = %d, want 1", got.OrderCount)
	}
	if got.TopDish == nil || got.TopDish.Name != "Pizza" || got.TopDish.Quantity != 2 {
		t.Fatalf("topDish = %+v", got.TopDish)
	}
}

func TestLegacyOrdersFallBackToCreatedAt(t *testing.T) {
	legacy := models.Order{
		Status:     models.OrderStatusDelivered,
		TotalPrice: 12,
		CreatedAt:  now,
		// deliveredAt never written for pre-migration rows
	}

	got := ComputeDailyStats([]models.Order{legacy}, now)
	if got.OrderCount != 1 || got.Revenue != 12 {
		t.Fatalf("legacy order not counted: %+v", got)
	}
}

func TestTopDishSumsAcrossOrders(t *testing.T) {
	orders := []models.Order{
		delivered(20, now,
			models.OrderItem{Name: "Pizza", Quantity: 1},
			models.OrderItem{Name: "Cola", Quantity: 2}),
		delivered(15, now,
			models.OrderItem{Name: "Cola", Quantity: 1},
			models.OrderItem{Name: "Pizza", Quantity: 3}),
	}

	got := ComputeDailyStats(orders, now)
	if got.TopDish == nil || got.TopDish.Name != "Pizza" || got.TopDish.Quantity != 4 {
		t.Fatalf("topDish = %+v, want Pizza x4", got.TopDish)
	}
}

func TestTopDishTieKeepsFirstSeen(t *testing.T) {
	orders := []models.Order{
		delivered(20, now,
			models.OrderItem{Name: "Cola", Quantity: 2},
			models.OrderItem{Name: "Pizza", Quantity: 2}),
	}

	got := ComputeDailyStats(orders, now)
	if got.TopDish == nil || got.TopDish.Name != "Cola" {
		t.Fatalf("tie should keep first-seen dish, got %+v", got.TopDish)
	}
}

func TestDishTotalsOrdering(t *testing.T) {
	orders := []models.Order{
		delivered(0, now,
			models.OrderItem{Name: "Cola", Quantity: 1},
			models.OrderItem{Name: "Pizza", Quantity: 2}),
		delivered(0, now,
			models.OrderItem{Name: "Cola", Quantity: 1}),
	}

	totals := DishTotals(orders, now)
	if len(totals) != 2 {
		t.Fatalf("got %d dishes, want 2", len(totals))
	}
	if totals[0].Name != "Cola" || totals[0].Quantity != 2 {
		t.Fatalf("totals[0] = %+v", totals[0])
	}
	if totals[1].Name != "Pizza" || totals[1].Quantity != 2 {
		t.Fatalf("totals[1] = %+v", totals[1])
	}
}
