package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	tableControllers "github.com/Razafimahaleo/appresto/controllers/table"
	"github.com/Razafimahaleo/appresto/middleware"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

func SetupTableRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub) {
	tables := r.Group("/tables")
	{
		// Roster with both occupancy signals, read by the selection screen
		tables.GET("", tableControllers.ListTablesHandler(db))

		// Access-code protocol for customers picking a table
		tables.POST("/:tableID/claim", tableControllers.ClaimTableHandler(db, hub))

		cashier := tables.Group("", middleware.ValidateToken, middleware.RequireRoles(models.RoleCashier))
		{
			cashier.POST("", tableControllers.AddTableHandler(db, hub))
			cashier.PUT("", tableControllers.SetTablesHandler(db, hub))
			cashier.DELETE("/:tableID", tableControllers.RemoveTableHandler(db, hub))
			cashier.POST("/:tableID/release", tableControllers.ReleaseTableHandler(db, hub))
			cashier.GET("/:tableID/lock", tableControllers.GetLockHandler(db))
		}
	}
}
