package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Razafimahaleo/appresto/controllers/order"
	"github.com/Razafimahaleo/appresto/middleware"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create a new order (customer or staff session)
		orders.POST("", orderControllers.CreateOrderHandler(db, hub))

		// Customer view: the selected table's orders plus the ready stream
		orders.GET("/table/:tableID", orderControllers.ListTableOrdersHandler(db))
		orders.GET("/ws/table/:tableID", orderControllers.TableOrdersWebSocketHandler(db, hub))

		staff := orders.Group("", middleware.RequireRoles(models.RoleChef, models.RoleCashier))
		{
			staff.GET("", orderControllers.ListOrdersHandler(db))
			staff.GET("/active", orderControllers.ListActiveOrdersHandler(db))
			staff.GET("/ready", orderControllers.ListReadyOrdersHandler(db))
			staff.GET("/:orderID", orderControllers.GetOrderHandler(db))

			// Real-time feed for the kitchen and cashier boards
			staff.GET("/ws", orderControllers.OrdersWebSocketHandler(db, hub))
		}

		// Only the kitchen advances the status flow
		chef := orders.Group("", middleware.RequireRoles(models.RoleChef))
		chef.PATCH("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db, hub))
	}
}
