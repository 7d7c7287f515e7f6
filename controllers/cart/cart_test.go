package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, userID string, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.POST("/cart/submit", func(c *gin.Context) {
		c.Set("user_id", userID)
	}, handler)

	req := httptest.NewRequest(http.MethodPost, "/cart/submit", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func seededSessions(t *testing.T, userID string) *Sessions {
	t.Helper()
	sessions := NewSessions()
	userCart := sessions.cartFor(userID)
	userCart.Add(models.MenuItem{ID: "p1", Name: "Pizza", Price: 9.5}, "")
	userCart.Add(models.MenuItem{ID: "c1", Name: "Cola", Price: 2.5}, "")
	return sessions
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	sessions := NewSessions()
	handler := submitCart(sessions, func(tableID string, items []models.OrderItem) (models.Order, error) {
		t.Fatal("placeOrder should not run for an empty cart")
		return models.Order{}, nil
	})

	w := postJSON(t, "u1", handler, SubmitCartRequest{TableID: "3"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
}

func TestSubmitKeepsCartWhenOrderCreationFails(t *testing.T) {
	sessions := seededSessions(t, "u1")
	handler := submitCart(sessions, func(tableID string, items []models.OrderItem) (models.Order, error) {
		return models.Order{}, errs.Transport("failed to create order", nil)
	})

	w := postJSON(t, "u1", handler, SubmitCartRequest{TableID: "3"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503; body %s", w.Code, w.Body.String())
	}

	userCart := sessions.cartFor("u1")
	if userCart.IsEmpty() {
		t.Fatal("cart was cleared although the order was not stored")
	}
	if got := userCart.Count(); got != 2 {
		t.Fatalf("cart count = %d, want 2", got)
	}
}

func TestSubmitClearsCartAfterOrderIsStored(t *testing.T) {
	sessions := seededSessions(t, "u1")

	var gotTableID string
	var gotItems []models.OrderItem
	handler := submitCart(sessions, func(tableID string, items []models.OrderItem) (models.Order, error) {
		gotTableID = tableID
		gotItems = items
		return models.Order{ID: "o1", TableID: tableID, Status: models.OrderStatusPending}, nil
	})

	w := postJSON(t, "u1", handler, SubmitCartRequest{TableID: "3"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	if gotTableID != "3" {
		t.Fatalf("tableID = %q, want %q", gotTableID, "3")
	}
	if len(gotItems) != 2 {
		t.Fatalf("submitted %d items, want 2", len(gotItems))
	}

	if !sessions.cartFor("u1").IsEmpty() {
		t.Fatal("cart should be empty after a stored order")
	}
}
