package statsControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/stats"
)

func orderHistory(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").Find(&orders).Error
	return orders, err
}

// GET /stats/daily  (cashier dashboard)
// Recomputed from the full order history on every call; restaurant volumes
// make that cheaper than maintaining incremental counters.
func DailyStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := orderHistory(db)
		if err != nil {
			err = errs.Transport("failed to fetch orders", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats.ComputeDailyStats(orders, time.Now()))
	}
}
