package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	staffControllers "github.com/Razafimahaleo/appresto/controllers/staff"
	"github.com/Razafimahaleo/appresto/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.POST("/staff", staffControllers.CreateStaffHandler(db))
		admin.GET("/staff", staffControllers.ListStaffHandler(db))
		admin.DELETE("/staff/:staffID", staffControllers.DeleteStaffHandler(db))
	}
}
