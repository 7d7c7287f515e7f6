package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	menuControllers "github.com/Razafimahaleo/appresto/controllers/menu"
	"github.com/Razafimahaleo/appresto/middleware"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

func SetupMenuRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub) {
	menus := r.Group("/menus")
	{
		menus.GET("", menuControllers.ListMenusHandler(db))
		menus.GET("/promos", menuControllers.ListPromoMenusHandler(db))
		menus.GET("/:menuID", menuControllers.GetMenuHandler(db))

		writes := menus.Group("", middleware.ValidateToken, middleware.RequireRoles(models.RoleCashier))
		{
			writes.POST("", menuControllers.CreateMenuHandler(db, hub))
			writes.PUT("/:menuID", menuControllers.UpdateMenuHandler(db, hub))
			writes.DELETE("/:menuID", menuControllers.DeleteMenuHandler(db, hub))
		}
	}
}
