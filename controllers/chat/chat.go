package chatControllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /chat
func ListMessagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ChatMessage
		if err := db.Order("created_at").Find(&messages).Error; err != nil {
			err = errs.Transport("failed to fetch messages", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// POST /chat
// The sender is the token's role, never client input, so a chef cannot
// impersonate the cashier.
func SendMessageHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, _ := c.Get("role")
		role, _ := roleVal.(string)
		if !models.IsStaffRole(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}

		var req SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		text := strings.TrimSpace(req.Text)
		if text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
			return
		}
		if len([]rune(text)) > models.MaxChatMessageLen {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message exceeds 500 characters"})
			return
		}

		msg := models.ChatMessage{
			ID:     uuid.NewString(),
			Sender: role,
			Text:   text,
		}
		if err := db.Create(&msg).Error; err != nil {
			err = errs.Transport("failed to send message", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if hub != nil {
			hub.Publish(realtime.TopicChat, "message", msg.ID)
		}
		c.JSON(http.StatusCreated, msg)
	}
}

type wsMessage struct {
	Type     string               `json:"type"`
	Messages []models.ChatMessage `json:"messages,omitempty"`
}

// GET /chat/ws
// Streams the full thread on every new message; the thread is small enough
// that re-sending beats diffing.
func ChatWebSocketHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		sub := hub.Subscribe(realtime.TopicChat)
		defer sub.Close()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		send := func() error {
			var messages []models.ChatMessage
			if err := db.Order("created_at").Find(&messages).Error; err != nil {
				log.Printf("❌ chat snapshot query failed: %v", err)
				messages = nil
			}
			return conn.WriteJSON(wsMessage{Type: "snapshot", Messages: messages})
		}

		if err := send(); err != nil {
			return
		}
		for {
			select {
			case <-done:
				return
			case _, ok := <-sub.C:
				if !ok {
					return
				}
				if err := send(); err != nil {
					return
				}
			}
		}
	}
}
