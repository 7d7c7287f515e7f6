package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

// -------- Request Structs --------

type OrderItemInput struct {
	MenuID   string  `json:"menuId" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
}

type CreateOrderRequest struct {
	TableID   string           `json:"tableId" binding:"required"`
	TableName string           `json:"tableName" binding:"required"`
	Items     []OrderItemInput `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusPreparing):
		return models.OrderStatusPreparing, nil
	case string(models.OrderStatusReady):
		return models.OrderStatusReady, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	default:
		return "", errs.Validationf("invalid order status %q", status)
	}
}

// ValidateItems rejects order lines the lifecycle cannot accept: an empty
// list, a non-positive quantity, or a negative price.
func ValidateItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return errs.Validationf("order must contain at least one item")
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return errs.Validationf("item %q has non-positive quantity %d", it.Name, it.Quantity)
		}
		if it.UnitPrice < 0 {
			return errs.Validationf("item %q has negative price", it.Name)
		}
	}
	return nil
}

// respondError translates a taxonomy error into the JSON error body every
// handler uses.
func respondError(c *gin.Context, err error) {
	c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
}

func publishOrderChange(hub *realtime.Hub, order models.Order) {
	if hub == nil {
		return
	}
	hub.Publish(realtime.TopicOrders, "order_changed", order.ID)
	hub.Publish(realtime.TableOrdersTopic(order.TableID), "order_changed", order.ID)
}

// -------- Core Logic --------

// CreateOrder writes a new pending order: total computed once from the
// immutable lines, both timestamps stamped atomically with the status.
func CreateOrder(db *gorm.DB, hub *realtime.Hub, tableID, tableName string, items []models.OrderItem) (models.Order, error) {
	if err := ValidateItems(items); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:         uuid.NewString(),
		TableID:    tableID,
		TableName:  tableName,
		Items:      items,
		Status:     models.OrderStatusPending,
		TotalPrice: models.ItemsTotal(items),
	}
	if err := db.Create(&order).Error; err != nil {
		return models.Order{}, errs.Transport("failed to create order", err)
	}

	publishOrderChange(hub, order)
	return order, nil
}

// TransitionOrder moves an order one step forward in the kitchen flow. The
// current row is locked and re-checked inside the transaction because the
// database itself has no notion of adjacent statuses.
func TransitionOrder(db *gorm.DB, hub *realtime.Hub, orderID string, to models.OrderStatus) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("order %s not found", orderID)
			}
			return errs.Transport("failed to load order", err)
		}

		now := time.Now()
		updates, err := models.TransitionUpdates(order, to, now)
		if err != nil {
			return err
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return errs.Transport("failed to update order status", err)
		}
		order.Status = to
		order.UpdatedAt = now
		if to == models.OrderStatusDelivered {
			order.DeliveredAt = &now
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	publishOrderChange(hub, order)
	return order, nil
}

// -------- Query helpers (shared with the websocket streams) --------

func activeOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").
		Where("status <> ?", models.OrderStatusDelivered).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func readyOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").
		Where("status = ?", models.OrderStatusReady).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func tableOrders(db *gorm.DB, tableID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").
		Where("table_id = ?", tableID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// -------- Handlers --------

// POST /orders
func CreateOrderHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, in := range req.Items {
			items = append(items, models.OrderItem{
				MenuID:    in.MenuID,
				Name:      in.Name,
				Quantity:  in.Quantity,
				UnitPrice: in.Price,
				Notes:     strings.TrimSpace(in.Notes),
			})
		}

		order, err := CreateOrder(db, hub, req.TableID, req.TableName, items)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders?status=  (page size fixed at 50, newest first)
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC").Limit(50)

		if statusStr := c.Query("status"); statusStr != "" {
			status, err := mapOrderStatus(statusStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			respondError(c, errs.Transport("failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/active  (kitchen view)
func ListActiveOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := activeOrders(db)
		if err != nil {
			respondError(c, errs.Transport("failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/ready  (cashier view)
func ListReadyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := readyOrders(db)
		if err != nil {
			respondError(c, errs.Transport("failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/table/:tableID
// Newest first, like every other listing; the client reverses for display
// so the table's earliest current order shows on top.
func ListTableOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID := c.Param("tableID")
		if tableID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tableID is required"})
			return
		}
		orders, err := tableOrders(db, tableID)
		if err != nil {
			respondError(c, errs.Transport("failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, errs.NotFoundf("order %s not found", orderID))
				return
			}
			respondError(c, errs.Transport("failed to fetch order", err))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := mapOrderStatus(req.Status)
		if err != nil {
			respondError(c, err)
			return
		}

		order, err := TransitionOrder(db, hub, orderID, status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
