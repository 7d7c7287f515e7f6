package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
)

// POST /auth/staff-login
// PIN login for the kitchen tablet: no identity provider round trip, just
// a bcrypt check against the staff table.
func StaffLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required"`
			PIN   string `json:"pin" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var staff models.StaffUser
		if err := db.Where("email = ?", req.Email).First(&staff).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			err = errs.Transport("failed to load staff user", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(staff.PINHash), []byte(req.PIN)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := generateJWT(staff.ID, staff.Email, staff.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"uid":   staff.ID,
			"email": staff.Email,
			"name":  staff.Name,
			"role":  staff.Role,
			"token": token,
		})
	}
}
