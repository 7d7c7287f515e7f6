package staffControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
)

type CreateStaffRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role" binding:"required"`
	PIN   string `json:"pin" binding:"required,min=4"`
}

// POST /admin/staff  (API key)
// Bootstrap endpoint: creates the chef/cashier accounts used by PIN login.
// Protected by the deployment API key since it must work before any staff
// token exists.
func CreateStaffHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateStaffRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.IsStaffRole(req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be chef or cashier"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash PIN"})
			return
		}

		staff := models.StaffUser{
			ID:      uuid.NewString(),
			Email:   req.Email,
			Name:    req.Name,
			Role:    req.Role,
			PINHash: string(hash),
		}
		if err := db.Create(&staff).Error; err != nil {
			err = errs.Transport("failed to create staff user", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, staff)
	}
}

// GET /admin/staff  (API key)
func ListStaffHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var staff []models.StaffUser
		if err := db.Order("created_at").Find(&staff).Error; err != nil {
			err = errs.Transport("failed to fetch staff", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, staff)
	}
}

// DELETE /admin/staff/:staffID  (API key)
func DeleteStaffHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := c.Param("staffID")

		result := db.Delete(&models.StaffUser{}, "id = ?", staffID)
		if result.Error != nil {
			err := errs.Transport("failed to delete staff user", result.Error)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff user not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Staff user deleted"})
	}
}
