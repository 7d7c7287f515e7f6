package menuControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
)

// GET /menus
// Ordering views pass ?available=true so unavailable dishes stay hidden
// from customers while management still sees everything.
func ListMenusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.MenuItem{}).Order("category, name")

		if c.Query("available") == "true" {
			query = query.Where("is_available = ?", true)
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var menus []models.MenuItem
		if err := query.Find(&menus).Error; err != nil {
			err = errs.Transport("failed to fetch menus", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, menus)
	}
}

// GET /menus/promos
func ListPromoMenusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var menus []models.MenuItem
		if err := db.Where("is_promo = ? AND is_available = ?", true, true).
			Order("category, name").
			Find(&menus).Error; err != nil {
			err = errs.Transport("failed to fetch promotions", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, menus)
	}
}

// GET /menus/:menuID
func GetMenuHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		menuID := c.Param("menuID")

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
		c.JSON(http.StatusOK, menu)
	}
}
