// Package stats derives the cashier dashboard figures from the order
// history. Everything recomputes from scratch on each call; at restaurant
// volumes that is cheaper than keeping incremental state correct.
package stats

import (
	"time"

	"github.com/Razafimahaleo/appresto/models"
)

type DishCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type DailyStats struct {
	Revenue    float64    `json:"revenue"`
	OrderCount int        `json:"orderCount"`
	TopDish    *DishCount `json:"topDish"`
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// deliveredOn filters to orders served on the given calendar day. Orders
// predating the deliveredAt column fall back to their creation time.
func deliveredOn(orders []models.Order, day time.Time) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if o.Status != models.OrderStatusDelivered {
			continue
		}
		when := o.CreatedAt
		if o.DeliveredAt != nil {
			when = *o.DeliveredAt
		}
		if sameDay(when, day) {
			out = append(out, o)
		}
	}
	return out
}

// ComputeDailyStats returns revenue, order count, and the best-selling dish
// for the calendar day of now, in now's location. TopDish is nil when
// nothing was delivered that day; ties keep whichever dish was encountered
// first.
func ComputeDailyStats(orders []models.Order, now time.Time) DailyStats {
	delivered := deliveredOn(orders, now)

	var revenue float64
	for _, o := range delivered {
		revenue += o.TotalPrice
	}

	dishes := DishTotals(orders, now)
	var top *DishCount
	for i := range dishes {
		if top == nil || dishes[i].Quantity > top.Quantity {
			top = &DishCount{Name: dishes[i].Name, Quantity: dishes[i].Quantity}
		}
	}

	return DailyStats{
		Revenue:    revenue,
		OrderCount: len(delivered),
		TopDish:    top,
	}
}

// DishTotals sums quantities per dish name over the day's delivered orders,
// in first-appearance order so ties resolve deterministically.
func DishTotals(orders []models.Order, now time.Time) []DishCount {
	byName := make(map[string]int)
	var names []string
	for _, o := range deliveredOn(orders, now) {
		for _, it := range o.Items {
			if _, seen := byName[it.Name]; !seen {
				names = append(names, it.Name)
			}
			byName[it.Name] += it.Quantity
		}
	}

	out := make([]DishCount, 0, len(names))
	for _, name := range names {
		out = append(out, DishCount{Name: name, Quantity: byName[name]})
	}
	return out
}
