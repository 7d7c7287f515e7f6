// Package cart implements the ephemeral pre-order cart. A cart lives in
// memory for the duration of a client session and is never persisted; on
// submit its lines become the immutable items of a new order.
package cart

import (
	"strings"
	"sync"

	"github.com/Razafimahaleo/appresto/models"
)

// Line is one product + quantity + notes entry. Two lines are the same
// position iff menu id and normalized notes match.
type Line struct {
	MenuID    string  `json:"menuId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
	Notes     string  `json:"notes,omitempty"`
}

// Cart is safe for concurrent use; a session's requests may overlap.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func normalizeNotes(notes string) string {
	return strings.TrimSpace(notes)
}

// Add puts one unit of the menu item into the cart at its effective price.
// A line with the same menu id and notes absorbs the unit; otherwise a new
// line of quantity 1 is appended.
func (c *Cart) Add(item models.MenuItem, notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	notes = normalizeNotes(notes)
	for i := range c.lines {
		if c.lines[i].MenuID == item.ID && c.lines[i].Notes == notes {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		MenuID:    item.ID,
		Name:      item.Name,
		Quantity:  1,
		UnitPrice: item.EffectivePrice(),
		Notes:     notes,
	})
}

// Adjust applies a quantity delta to the matching line. A resulting
// quantity of zero or below removes the line. Adjusting a line that does
// not exist is a no-op.
func (c *Cart) Adjust(menuID, notes string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	notes = normalizeNotes(notes)
	for i := range c.lines {
		if c.lines[i].MenuID != menuID || c.lines[i].Notes != notes {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Total recomputes the cart price on every call; nothing is cached.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// Count is the summed quantity across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Lines returns a copy so callers cannot mutate cart state in place.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// OrderItems converts the cart into order lines for submission.
func (c *Cart) OrderItems() []models.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{
			MenuID:    l.MenuID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Notes:     l.Notes,
		})
	}
	return items
}
