package routes

import (
	"github.com/gin-gonic/gin"

	uploadControllers "github.com/Razafimahaleo/appresto/controllers/upload"
	"github.com/Razafimahaleo/appresto/middleware"
	"github.com/Razafimahaleo/appresto/models"
)

func SetupUploadRoutes(r *gin.Engine, uploadsDir, publicBaseURL string) {
	upload := r.Group("/upload")
	upload.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleCashier))
	{
		upload.POST("/menu-image", uploadControllers.UploadMenuImageHandler(uploadsDir, publicBaseURL))
	}
}
