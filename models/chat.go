package models

import "time"

// ChatMessage is one entry in the staff discussion between the chef and the
// cashier. Append-only, ordered by creation time.
type ChatMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Sender    string    `gorm:"type:VARCHAR(20);not null" json:"sender"` // chef | cashier
	Text      string    `gorm:"type:VARCHAR(500);not null" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// MaxChatMessageLen bounds the stored text; longer input is rejected, not
// truncated.
const MaxChatMessageLen = 500
