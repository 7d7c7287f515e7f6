package tableControllers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

type ClaimTableRequest struct {
	Code    string `json:"code" binding:"required"`
	Confirm string `json:"confirm"`
}

// ClaimTable runs the access-code protocol for one table. A free table
// takes a new 4-digit code (entered twice); an occupied one requires the
// stored code to match exactly. Failed attempts may be retried immediately,
// there is no lockout.
func ClaimTable(db *gorm.DB, tableID, code, confirm string) error {
	var table models.Table
	if err := db.First(&table, "id = ?", tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("table %s not found", tableID)
		}
		return errs.Transport("failed to load table", err)
	}

	var lock models.TableLock
	err := db.First(&lock, "table_id = ?", tableID).Error
	switch {
	case err == nil:
		// Occupied: joining requires the exact stored code.
		if code != lock.Code {
			return errs.Authf("wrong access code")
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Free: set a fresh code, confirmed by double entry.
		if !codePattern.MatchString(code) {
			return errs.Validationf("access code must be exactly 4 digits")
		}
		if code != confirm {
			return errs.Validationf("code confirmation does not match")
		}
		newLock := models.TableLock{TableID: tableID, Code: code}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "table_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"code"}),
		}).Create(&newLock).Error; err != nil {
			return errs.Transport("failed to set table lock", err)
		}
		return nil
	default:
		return errs.Transport("failed to load table lock", err)
	}
}

// POST /tables/:tableID/claim
func ClaimTableHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID := c.Param("tableID")

		var req ClaimTableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := ClaimTable(db, tableID, req.Code, req.Confirm); err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if hub != nil {
			hub.Publish(realtime.TopicTables, "tables_changed", tableID)
		}
		c.JSON(http.StatusOK, gin.H{"tableId": tableID, "message": "Table claimed"})
	}
}

// POST /tables/:tableID/release  (cashier)
// Clearing an already-unlocked table is not an error; the lock and any
// active orders are independent, so a release never touches orders.
func ReleaseTableHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID := c.Param("tableID")

		if err := db.Delete(&models.TableLock{}, "table_id = ?", tableID).Error; err != nil {
			err = errs.Transport("failed to release table", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if hub != nil {
			hub.Publish(realtime.TopicTables, "tables_changed", tableID)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Table released"})
	}
}

// GET /tables/:tableID/lock  (cashier)
func GetLockHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID := c.Param("tableID")

		var lock models.TableLock
		if err := db.First(&lock, "table_id = ?", tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"tableId": tableID, "locked": false})
				return
			}
			err = errs.Transport("failed to fetch table lock", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tableId": tableID, "locked": true, "code": lock.Code})
	}
}
