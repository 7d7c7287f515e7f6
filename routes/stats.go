package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	statsControllers "github.com/Razafimahaleo/appresto/controllers/stats"
	"github.com/Razafimahaleo/appresto/middleware"
	"github.com/Razafimahaleo/appresto/models"
)

func SetupStatsRoutes(r *gin.Engine, db *gorm.DB) {
	statsGroup := r.Group("/stats")
	statsGroup.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleCashier))
	{
		statsGroup.GET("/daily", statsControllers.DailyStatsHandler(db))
		statsGroup.GET("/daily/export", statsControllers.ExportDailyStatsToExcel(db))
	}
}
