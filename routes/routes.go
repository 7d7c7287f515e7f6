package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Razafimahaleo/appresto/controllers/cart"
	"github.com/Razafimahaleo/appresto/realtime"
)

// Config carries everything the route groups need besides the DB.
type Config struct {
	Hub           *realtime.Hub
	CartSessions  *cartControllers.Sessions
	UploadsDir    string
	PublicBaseURL string
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg Config) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Menu reads are public, writes are cashier-only
	SetupMenuRoutes(r, db, cfg.Hub)

	// Orders: creation for any session, status flow for staff
	SetupOrderRoutes(r, db, cfg.Hub)

	// Table roster, locks, and the claim protocol
	SetupTableRoutes(r, db, cfg.Hub)

	// Per-session carts
	SetupCartRoutes(r, db, cfg.Hub, cfg.CartSessions)

	// Staff chat
	SetupChatRoutes(r, db, cfg.Hub)

	// Cashier dashboard
	SetupStatsRoutes(r, db)

	// Menu image upload
	SetupUploadRoutes(r, cfg.UploadsDir, cfg.PublicBaseURL)

	// Staff account bootstrap (API-key protected)
	SetupAdminRoutes(r, db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})
}
