package models

import "time"

type MenuItem struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `json:"description"`
	Price        float64    `gorm:"not null" json:"price"`
	Category     string     `json:"category"`
	Image        string     `json:"image,omitempty"`
	IsAvailable  bool       `gorm:"default:true" json:"isAvailable"`
	IsPromo      bool       `json:"isPromo"`
	PromoPrice   *float64   `json:"promoPrice,omitempty"`
	PromoEndDate *time.Time `json:"promoEndDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// EffectivePrice is the price charged when the item is added to a cart:
// the promo price while a promotion is active, the base price otherwise.
func (m MenuItem) EffectivePrice() float64 {
	if m.IsPromo && m.PromoPrice != nil {
		return *m.PromoPrice
	}
	return m.Price
}
