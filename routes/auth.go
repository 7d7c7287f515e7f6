package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/auth"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Identity-provider login for staff phones
		authGroup.POST("/login", auth.LoginHandler())

		// PIN login for the kitchen tablet
		authGroup.POST("/staff-login", auth.StaffLoginHandler(db))

		// Anonymous session for a customer at a table
		authGroup.POST("/guest", auth.CreateGuestSession())

		authGroup.GET("/verify", auth.VerifyHandler())
	}
}
