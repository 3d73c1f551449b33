package handlers

import (
	"net/http"
	"testing"

	"suuq-storefront/cart"
	"suuq-storefront/models"

	"github.com/gin-gonic/gin"
)

func newCartRouter(t *testing.T) (*gin.Engine, *cart.Store) {
	t.Helper()
	store := cart.NewStore(openTestStorage(t))
	h := &CartHandler{Cart: store}

	r := gin.New()
	r.GET("/api/cart", h.GetCart)
	r.POST("/api/cart", h.AddToCart)
	r.PUT("/api/cart/:id", h.UpdateCartItem)
	r.DELETE("/api/cart/:id", h.RemoveFromCart)
	return r, store
}

func addPayload(id string, price float64, color string) map[string]interface{} {
	return map[string]interface{}{
		"product": models.Product{
			ID:       id,
			Name:     "Product " + id,
			Price:    price,
			ImageURL: id + ".jpg",
		},
		"selected_color": color,
	}
}

func TestGetCartEmpty(t *testing.T) {
	r, _ := newCartRouter(t)

	w := performJSON(r, "GET", "/api/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["totalItems"].(float64) != 0 {
		t.Errorf("expected 0 total items, got %v", body["totalItems"])
	}
	if body["cartTotal"].(float64) != 0 {
		t.Errorf("expected 0 cart total, got %v", body["cartTotal"])
	}
}

func TestAddToCart(t *testing.T) {
	r, store := newCartRouter(t)

	w := performJSON(r, "POST", "/api/cart", addPayload("p1", 10, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["totalItems"].(float64) != 1 {
		t.Errorf("expected 1 total item, got %v", body["totalItems"])
	}
	if body["cartTotal"].(float64) != 10 {
		t.Errorf("expected cart total 10, got %v", body["cartTotal"])
	}
	if len(store.Items()) != 1 {
		t.Error("expected the store to hold the line item")
	}
}

func TestAddToCartTwiceMergesLine(t *testing.T) {
	r, store := newCartRouter(t)

	performJSON(r, "POST", "/api/cart", addPayload("p1", 10, ""))
	w := performJSON(r, "POST", "/api/cart", addPayload("p1", 10, ""))

	body := decodeBody(t, w)
	if body["totalItems"].(float64) != 2 {
		t.Errorf("expected 2 total items, got %v", body["totalItems"])
	}
	if len(store.Items()) != 1 {
		t.Errorf("expected a single line item, got %d", len(store.Items()))
	}
}

func TestAddToCartColorVariants(t *testing.T) {
	r, store := newCartRouter(t)

	performJSON(r, "POST", "/api/cart", addPayload("p1", 10, "red"))
	performJSON(r, "POST", "/api/cart", addPayload("p1", 10, "blue"))

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
	if items[0].CartItemID != "p1-red" || items[1].CartItemID != "p1-blue" {
		t.Errorf("unexpected ids: %s, %s", items[0].CartItemID, items[1].CartItemID)
	}
}

func TestAddToCartMissingProduct(t *testing.T) {
	r, _ := newCartRouter(t)

	w := performJSON(r, "POST", "/api/cart", map[string]interface{}{"selected_color": "red"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateCartItemQuantity(t *testing.T) {
	r, store := newCartRouter(t)

	performJSON(r, "POST", "/api/cart", addPayload("p1", 10, ""))
	w := performJSON(r, "PUT", "/api/cart/p1", map[string]int{"quantity": 4})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := store.Items()[0].Quantity; got != 4 {
		t.Errorf("expected quantity 4, got %d", got)
	}
}

func TestUpdateCartItemZeroRemoves(t *testing.T) {
	r, store := newCartRouter(t)

	performJSON(r, "POST", "/api/cart", addPayload("p1", 10, ""))
	w := performJSON(r, "PUT", "/api/cart/p1", map[string]int{"quantity": 0})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(store.Items()) != 0 {
		t.Error("expected item removed for quantity 0")
	}
}

func TestUpdateCartItemMissingQuantity(t *testing.T) {
	r, _ := newCartRouter(t)

	performJSON(r, "POST", "/api/cart", addPayload("p1", 10, ""))
	w := performJSON(r, "PUT", "/api/cart/p1", map[string]string{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRemoveFromCart(t *testing.T) {
	r, store := newCartRouter(t)

	performJSON(r, "POST", "/api/cart", addPayload("p1", 10, ""))
	w := performJSON(r, "DELETE", "/api/cart/p1", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(store.Items()) != 0 {
		t.Error("expected empty cart after removal")
	}
}

func TestRemoveFromCartUnknownID(t *testing.T) {
	r, _ := newCartRouter(t)

	// Removing something that isn't there is a no-op, not an error
	w := performJSON(r, "DELETE", "/api/cart/missing", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
