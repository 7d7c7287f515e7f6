package orderControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/notify"
	"github.com/Razafimahaleo/appresto/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsMessage struct {
	Type    string         `json:"type"`
	Orders  []models.Order `json:"orders,omitempty"`
	OrderID string         `json:"orderId,omitempty"`
}

// GET /orders/ws
// Streams a fresh active-orders snapshot to staff views on every change.
func OrdersWebSocketHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		sub := hub.Subscribe(realtime.TopicOrders)
		streamOrders(conn, sub, func() ([]models.Order, error) {
			return activeOrders(db)
		}, nil)
	}
}

// GET /orders/ws/table/:tableID
// The customer-facing stream: snapshots of the table's orders plus a
// one-shot order_ready event whenever one of them flips into ready.
func TableOrdersWebSocketHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID := c.Param("tableID")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		sub := hub.Subscribe(realtime.TableOrdersTopic(tableID))
		streamOrders(conn, sub, func() ([]models.Order, error) {
			return tableOrders(db, tableID)
		}, notify.NewReadyTracker())
	}
}

// streamOrders pushes an initial snapshot, then one per hub wakeup, until
// the client disconnects. The tracker (when present) dies with the
// connection, so a reconnect always starts with a clean slate.
func streamOrders(conn *websocket.Conn, sub *realtime.Subscription, query func() ([]models.Order, error), tracker *notify.ReadyTracker) {
	defer conn.Close()
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

	if err := sendSnapshot(conn, query, tracker); err != nil {
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
			if err := sendSnapshot(conn, query, tracker); err != nil {
				return
			}
		}
	}
}

func sendSnapshot(conn *websocket.Conn, query func() ([]models.Order, error), tracker *notify.ReadyTracker) error {
	orders, err := query()
	if err != nil {
		// Degrade to an empty snapshot; the next change will retry.
		log.Printf("❌ order snapshot query failed: %v", err)
		orders = nil
	}

	if err := conn.WriteJSON(wsMessage{Type: "snapshot", Orders: orders}); err != nil {
		return err
	}
	if tracker != nil {
		for _, id := range tracker.Observe(orders) {
			if err := conn.WriteJSON(wsMessage{Type: "order_ready", OrderID: id}); err != nil {
				return err
			}
		}
	}
	return nil
}
