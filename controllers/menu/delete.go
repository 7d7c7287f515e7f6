package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

// DELETE /menus/:menuID  (cashier)
// Orders keep their denormalized line names, so history stays legible
// after a dish disappears from the menu.
func DeleteMenuHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		menuID := c.Param("menuID")

		result := db.Delete(&models.MenuItem{}, "id = ?", menuID)
		if result.Error != nil {
			err := errs.Transport("failed to delete menu", result.Error)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
			return
		}

		if hub != nil {
			hub.Publish(realtime.TopicMenus, "menu_changed", menuID)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
	}
}
