package models

import "time"

const (
	RoleChef    = "chef"
	RoleCashier = "cashier"
	RoleClient  = "client"
)

// StaffUser backs the PIN login screen. The PIN is stored hashed; the role
// decides which write endpoints the issued token may call.
type StaffUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Role      string    `gorm:"type:VARCHAR(20);not null" json:"role"`
	PINHash   string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsStaffRole reports whether the role belongs to restaurant staff.
func IsStaffRole(role string) bool {
	return role == RoleChef || role == RoleCashier
}
