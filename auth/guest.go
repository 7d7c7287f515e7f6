package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Razafimahaleo/appresto/models"
)

// POST /auth/guest
// Issues an anonymous session for a customer at a table. The token only
// carries the client role; it keys the server-side cart and allows placing
// orders, nothing staff-facing.
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + randomHex(16)

		token, err := generateJWT(guestID, "", models.RoleClient)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": time.Now().Add(12 * time.Hour),
		})
	}
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
