package models

import (
	"strconv"
	"time"
)

// Table is one roster entry. Position keeps the cashier-defined ordering of
// the list shown to clients.
type Table struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Position int    `json:"-"`
}

// TableLock is the access code gating re-entry to an in-progress table
// session. It is intentionally independent of order state: clearing a lock
// says nothing about active orders and vice versa.
type TableLock struct {
	TableID   string    `gorm:"primaryKey" json:"tableId"`
	Code      string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// NextTableID returns the next roster id: one past the highest numeric id
// currently present. Non-numeric ids (corrupt or hand-edited data) are
// ignored for the max computation.
func NextTableID(tables []Table) string {
	max := 0
	for _, t := range tables {
		n, err := strconv.Atoi(t.ID)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
