package tableControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

// TableStatus carries both occupancy signals separately so callers can
// tell "order in progress" apart from "code-locked, no order yet".
type TableStatus struct {
	models.Table
	HasLock        bool `json:"hasLock"`
	HasActiveOrder bool `json:"hasActiveOrder"`
}

func rosterTables(db *gorm.DB) ([]models.Table, error) {
	var tables []models.Table
	err := db.Order("position, id").Find(&tables).Error
	return tables, err
}

// GET /tables
func ListTablesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tables, err := rosterTables(db)
		if err != nil {
			err = errs.Transport("failed to fetch tables", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		var locks []models.TableLock
		if err := db.Find(&locks).Error; err != nil {
			err = errs.Transport("failed to fetch table locks", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		locked := make(map[string]bool, len(locks))
		for _, l := range locks {
			locked[l.TableID] = true
		}

		var activeIDs []string
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusDelivered).
			Distinct("table_id").
			Pluck("table_id", &activeIDs).Error; err != nil {
			err = errs.Transport("failed to fetch active orders", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		active := make(map[string]bool, len(activeIDs))
		for _, id := range activeIDs {
			active[id] = true
		}

		statuses := make([]TableStatus, 0, len(tables))
		for _, t := range tables {
			statuses = append(statuses, TableStatus{
				Table:          t,
				HasLock:        locked[t.ID],
				HasActiveOrder: active[t.ID],
			})
		}
		c.JSON(http.StatusOK, statuses)
	}
}

type AddTableRequest struct {
	Name string `json:"name"`
}

// POST /tables  (cashier)
// Assigns max-numeric-id+1, ignoring any non-numeric ids that crept into
// the roster. Plain read-modify-write: concurrent adds can lose one, which
// is acceptable at human pace and recoverable by retry.
func AddTableHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddTableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tables, err := rosterTables(db)
		if err != nil {
			err = errs.Transport("failed to fetch tables", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		id := models.NextTableID(tables)
		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = id
		}
		position := 0
		for _, t := range tables {
			if t.Position >= position {
				position = t.Position + 1
			}
		}

		table := models.Table{ID: id, Name: name, Position: position}
		if err := db.Create(&table).Error; err != nil {
			err = errs.Transport("failed to add table", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if hub != nil {
			hub.Publish(realtime.TopicTables, "tables_changed", table.ID)
		}
		c.JSON(http.StatusCreated, table)
	}
}

type SetTablesRequest struct {
	Tables []models.Table `json:"tables" binding:"required"`
}

// PUT /tables  (cashier)
// Replaces the whole roster, used by the "initialize tables 1 to 5" action.
func SetTablesHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetTablesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, t := range req.Tables {
			if t.ID == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "table id is required"})
				return
			}
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&models.Table{}).Error; err != nil {
				return err
			}
			for i := range req.Tables {
				req.Tables[i].Position = i
				if req.Tables[i].Name == "" {
					req.Tables[i].Name = req.Tables[i].ID
				}
			}
			if len(req.Tables) == 0 {
				return nil
			}
			return tx.Create(&req.Tables).Error
		})
		if err != nil {
			err = errs.Transport("failed to set tables", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if hub != nil {
			hub.Publish(realtime.TopicTables, "tables_changed", nil)
		}
		c.JSON(http.StatusOK, req.Tables)
	}
}

// DELETE /tables/:tableID  (cashier)
// Existing orders keep their denormalized table name, so history survives
// the removal.
func RemoveTableHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID := c.Param("tableID")

		result := db.Delete(&models.Table{}, "id = ?", tableID)
		if result.Error != nil {
			err := errs.Transport("failed to remove table", result.Error)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}

		if hub != nil {
			hub.Publish(realtime.TopicTables, "tables_changed", tableID)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Table removed"})
	}
}
