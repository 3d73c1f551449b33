package handlers

import (
	"net/http"

	"suuq-storefront/cart"
	"suuq-storefront/models"
	"suuq-storefront/utils"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Cart *cart.Store
}

// cartView is the cart plus its derived totals, recomputed on every read.
func (h *CartHandler) cartView() gin.H {
	return gin.H{
		"items":      h.Cart.Items(),
		"totalItems": h.Cart.TotalItems(),
		"cartTotal":  h.Cart.CartTotal(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartView())
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req struct {
		Product       models.Product `json:"product" binding:"required"`
		SelectedColor string         `json:"selected_color"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if req.Product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
		return
	}

	h.Cart.Add(req.Product, req.SelectedColor)
	c.JSON(http.StatusOK, h.cartView())
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	// Zero or negative quantities remove the line item
	h.Cart.UpdateQuantity(id, *req.Quantity)
	c.JSON(http.StatusOK, h.cartView())
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	h.Cart.Remove(c.Param("id"))
	c.JSON(http.StatusOK, h.cartView())
}
