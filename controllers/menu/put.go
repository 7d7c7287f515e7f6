package menuControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

type UpdateMenuRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Price        *float64   `json:"price"`
	Category     *string    `json:"category"`
	Image        *string    `json:"image"`
	IsAvailable  *bool      `json:"isAvailable"`
	IsPromo      *bool      `json:"isPromo"`
	PromoPrice   *float64   `json:"promoPrice"`
	PromoEndDate *time.Time `json:"promoEndDate"`
}

// PUT /menus/:menuID  (cashier)
// Partial update: only the fields present in the body are written.
func UpdateMenuHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		menuID := c.Param("menuID")

		var req UpdateMenuRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Price != nil && *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		var menu models.MenuItem
		if err := db.First(&menu, "id = ?", menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
				return
			}
			err = errs.Transport("failed to fetch menu", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if req.IsAvailable != nil {
			updates["is_available"] = *req.IsAvailable
		}
		if req.IsPromo != nil {
			updates["is_promo"] = *req.IsPromo
		}
		if req.PromoPrice != nil {
			updates["promo_price"] = *req.PromoPrice
		}
		if req.PromoEndDate != nil {
			updates["promo_end_date"] = *req.PromoEndDate
		}

		if len(updates) > 0 {
			if err := db.Model(&menu).Updates(updates).Error; err != nil {
				err = errs.Transport("failed to update menu", err)
				c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
				return
			}
		}

		if hub != nil {
			hub.Publish(realtime.TopicMenus, "menu_changed", menu.ID)
		}
		c.JSON(http.StatusOK, menu)
	}
}
