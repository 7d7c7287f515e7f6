package uploadControllers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

// RestaurantID scopes stored objects; a single-restaurant deployment keeps
// the default.
const RestaurantID = "default"

var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

type UploadMenuImageRequest struct {
	Base64   string `json:"base64" binding:"required"`
	MenuID   string `json:"menuId" binding:"required"`
	MimeType string `json:"mimeType"`
}

// POST /upload/menu-image  (cashier)
// Accepts a base64 image, stores it at the menu's canonical object path
// (overwriting any previous image), and returns the public URL the app can
// put straight into the menu document.
func UploadMenuImageHandler(uploadsDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UploadMenuImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "base64 and menuId are required"})
			return
		}

		raw := dataURIPrefix.ReplaceAllString(req.Base64, "")
		raw = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
				return -1
			}
			return r
		}, raw)

		data, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 payload"})
			return
		}

		objectPath := filepath.Join("restaurants", RestaurantID, "menus", req.MenuID, "image.jpg")
		saveDir := filepath.Join(uploadsDir, filepath.Dir(objectPath))
		if err := os.MkdirAll(saveDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to create upload folder: %v", err)})
			return
		}

		savePath := filepath.Join(uploadsDir, objectPath)
		if err := os.WriteFile(savePath, data, 0o644); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to save image: %v", err)})
			return
		}

		url := publicBaseURL + "/uploads/" + filepath.ToSlash(objectPath)
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
