package cartControllers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/cart"
	orderControllers "github.com/Razafimahaleo/appresto/controllers/order"
	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
	"github.com/Razafimahaleo/appresto/realtime"
)

// Sessions holds one in-memory cart per authenticated client. Carts are
// ephemeral by design: a server restart empties them, nothing is persisted.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func NewSessions() *Sessions {
	return &Sessions{carts: make(map[string]*cart.Cart)}
}

func (s *Sessions) cartFor(userID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = cart.New()
		s.carts[userID] = c
	}
	return c
}

func sessionUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

type cartView struct {
	Items []cart.Line `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{Items: c.Lines(), Total: c.Total(), Count: c.Count()}
}

// GET /cart
func GetCartHandler(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, viewOf(sessions.cartFor(userID)))
	}
}

type AddItemRequest struct {
	MenuID string `json:"menuId" binding:"required"`
	Notes  string `json:"notes"`
}

// POST /cart/items
// Adds one unit of the menu item; the effective price is resolved here so
// a later promo change never rewrites lines already in the cart.
func AddItemHandler(db *gorm.DB, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var menu models.MenuItem
		if err := db.First(&menu, "id = ?", req.MenuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "menu item does not exist"})
				return
			}
			wrapped := errs.Transport("failed to validate menu item", err)
			c.JSON(errs.HTTPStatus(wrapped), gin.H{"error": wrapped.Error()})
			return
		}
		if !menu.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu item is not available"})
			return
		}

		userCart := sessions.cartFor(userID)
		userCart.Add(menu, req.Notes)
		c.JSON(http.StatusOK, viewOf(userCart))
	}
}

type AdjustItemRequest struct {
	MenuID string `json:"menuId" binding:"required"`
	Notes  string `json:"notes"`
	Delta  int    `json:"delta" binding:"required"`
}

// PATCH /cart/items
func AdjustItemHandler(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}

		var req AdjustItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		userCart := sessions.cartFor(userID)
		userCart.Adjust(req.MenuID, req.Notes, req.Delta)
		c.JSON(http.StatusOK, viewOf(userCart))
	}
}

// DELETE /cart
func ClearCartHandler(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}
		sessions.cartFor(userID).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

type SubmitCartRequest struct {
	TableID string `json:"tableId" binding:"required"`
}

// placeOrderFunc resolves the table and stores the order; split out so the
// submit flow can be exercised without Postgres.
type placeOrderFunc func(tableID string, items []models.OrderItem) (models.Order, error)

// POST /cart/submit
func SubmitCartHandler(db *gorm.DB, hub *realtime.Hub, sessions *Sessions) gin.HandlerFunc {
	return submitCart(sessions, func(tableID string, items []models.OrderItem) (models.Order, error) {
		var table models.Table
		if err := db.First(&table, "id = ?", tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Order{}, errs.NotFoundf("table %s not found", tableID)
			}
			return models.Order{}, errs.Transport("failed to load table", err)
		}
		return orderControllers.CreateOrder(db, hub, table.ID, table.Name, items)
	})
}

// submitCart turns the cart into a pending order. The cart is cleared only
// after the order is stored; on any failure it stays intact so the customer
// can retry.
func submitCart(sessions *Sessions, placeOrder placeOrderFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUser(c)
		if !ok {
			return
		}

		var req SubmitCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		userCart := sessions.cartFor(userID)
		if userCart.IsEmpty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		order, err := placeOrder(req.TableID, userCart.OrderItems())
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		userCart.Clear()
		c.JSON(http.StatusCreated, order)
	}
}
