package menuControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

type CreateMenuRequest struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Category     string     `json:"category" binding:"required"`
	Image        string     `json:"image"`
	IsAvailable  *bool      `json:"isAvailable"`
	IsPromo      bool       `json:"isPromo"`
	PromoPrice   *float64   `json:"promoPrice"`
	PromoEndDate *time.Time `json:"promoEndDate"`
}

// POST /menus  (cashier)
func CreateMenuHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMenuRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		if req.IsPromo && (req.PromoPrice == nil || *req.PromoPrice < 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "promo requires a non-negative promoPrice"})
			return
		}

		available := true
		if req.IsAvailable != nil {
			available = *req.IsAvailable
		}

		menu := models.MenuItem{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Description:  req.Description,
			Price:        req.Price,
			Category:     req.Category,
			Image:        req.Image,
			IsAvailable:  available,
			IsPromo:      req.IsPromo,
			PromoPrice:   req.PromoPrice,
			PromoEndDate: req.PromoEndDate,
		}
		if err := db.Create(&menu).Error; err != nil {
			err = errs.Transport("failed to create menu", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if hub != nil {
			hub.Publish(realtime.TopicMenus, "menu_changed", menu.ID)
		}
		c.JSON(http.StatusCreated, menu)
	}
}
