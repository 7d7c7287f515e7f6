package cart

import (
	"testing"

	"github.com/Razafimahaleo/appresto/models"
)

func menuItem(id, name string, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price}
}

func TestAddMergesSameLine(t *testing.T) {
	c := New()
	pizza := menuItem("p1", "Pizza", 9.5)

	c.Add(pizza, "")
	c.Add(pizza, "")

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", lines[0].Quantity)
	}
}

func TestAddDistinctNotesCreatesSeparateLine(t *testing.T) {
	c := New()
	pizza := menuItem("p1", "Pizza", 9.5)

	c.Add(pizza, "")
	c.Add(pizza, "no onions")

	if got := len(c.Lines()); got != 2 {
		t.Fatalf("got %d lines, want 2", got)
	}
}

func TestAddNormalizesNotes(t *testing.T) {
	c := New()
	pizza := menuItem("p1", "Pizza", 9.5)

	c.Add(pizza, "  no onions ")
	c.Add(pizza, "no onions")

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("notes not normalized: %+v", lines)
	}
}

func TestAddUsesPromoPrice(t *testing.T) {
	promo := 7.0
	item := models.MenuItem{ID: "p2", Name: "Burger", Price: 10, IsPromo: true, PromoPrice: &promo}

	c := New()
	c.Add(item, "")

	if got := c.Lines()[0].UnitPrice; got != 7.0 {
		t.Fatalf("unit price = %v, want promo price 7.0", got)
	}
}

func TestAdjustRemovesLineAtZero(t *testing.T) {
	c := New()
	c.Add(menuItem("p1", "Pizza", 9.5), "")
	c.Add(menuItem("p1", "Pizza", 9.5), "")

	c.Adjust("p1", "", -2)
	if !c.IsEmpty() {
		t.Fatalf("cart not empty after removing line: %+v", c.Lines())
	}

	// Adjusting the removed line again is a no-op.
	c.Adjust("p1", "", 1)
	if !c.IsEmpty() {
		t.Fatal("adjust on missing line created a line")
	}
}

func TestAdjustUpdatesInPlace(t *testing.T) {
	c := New()
	c.Add(menuItem("p1", "Pizza", 9.5), "")

	c.Adjust("p1", "", 2)
	if got := c.Lines()[0].Quantity; got != 3 {
		t.Fatalf("quantity = %d, want 3", got)
	}
}

func TestTotals(t *testing.T) {
	c := New()
	c.Add(menuItem("p1", "Pizza", 9.5), "")
	c.Add(menuItem("p1", "Pizza", 9.5), "")
	c.Add(menuItem("p3", "Cola", 2.5), "")

	if got := c.Total(); got != 21.5 {
		t.Fatalf("total = %v, want 21.5", got)
	}
	if got := c.Count(); got != 3 {
		t.Fatalf("count = %v, want 3", got)
	}
}

func TestOrderItemsConversion(t *testing.T) {
	c := New()
	c.Add(menuItem("p1", "Pizza", 9.5), "extra cheese")
	c.Add(menuItem("p1", "Pizza", 9.5), "extra cheese")

	items := c.OrderItems()
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	it := items[0]
	if it.MenuID != "p1" || it.Quantity != 2 || it.UnitPrice != 9.5 || it.Notes != "extra cheese" {
		t.Fatalf("unexpected order item %+v", it)
	}
	if got := models.ItemsTotal(items); got != 19.0 {
		t.Fatalf("items total = %v, want 19.0", got)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.Add(menuItem("p1", "Pizza", 9.5), "")

	lines := c.Lines()
	lines[0].Quantity = 99

	if got := c.Lines()[0].Quantity; got != 1 {
		t.Fatalf("external mutation leaked into cart: quantity = %d", got)
	}
}
