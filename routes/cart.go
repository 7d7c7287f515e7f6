package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Razafimahaleo/appresto/controllers/cart"
	"github.com/Razafimahaleo/appresto/middleware"
	"github.com/Razafimahaleo/appresto/realtime"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, sessions *cartControllers.Sessions) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCartHandler(sessions))
		cartGroup.POST("/items", cartControllers.AddItemHandler(db, sessions))
		cartGroup.PATCH("/items", cartControllers.AdjustItemHandler(sessions))
		cartGroup.DELETE("", cartControllers.ClearCartHandler(sessions))
		cartGroup.POST("/submit", cartControllers.SubmitCartHandler(db, hub, sessions))
	}
}
