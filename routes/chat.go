package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	chatControllers "github.com/Razafimahaleo/appresto/controllers/chat"
	"github.com/Razafimahaleo/appresto/middleware"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

func SetupChatRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub) {
	chat := r.Group("/chat")
	chat.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleChef, models.RoleCashier))
	{
		chat.GET("", chatControllers.ListMessagesHandler(db))
		chat.POST("", chatControllers.SendMessageHandler(db, hub))
		chat.GET("/ws", chatControllers.ChatWebSocketHandler(db, hub))
	}
}
