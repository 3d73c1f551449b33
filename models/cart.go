package models

// CartLineItem is one entry in the cart: a distinct product+color selection
// and its quantity. At most one line item exists per CartItemID.
type CartLineItem struct {
	CartItemID    string  `json:"cartItemId"`
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	ImageURL      string  `json:"imageUrl"`
	Price         float64 `json:"price"`
	SelectedColor string  `json:"selectedColor,omitempty"`
	Quantity      int     `json:"quantity"`
}

// CartItemID derives the line-item key for a product+color selection:
// the product id, suffixed with the color when one was chosen.
func CartItemID(productID, selectedColor string) string {
	if selectedColor != "" {
		return productID + "-" + selectedColor
	}
	return productID
}
