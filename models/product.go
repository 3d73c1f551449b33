package models

// Product is a catalog record as served by the product catalog service.
// Products are fetched, never stored locally.
type Product struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	Category           string            `json:"category,omitempty"`
	Price              float64           `json:"price"`
	Discount           float64           `json:"discount,omitempty"`
	ImageURL           string            `json:"imageUrl"`
	AvailableColors    []string          `json:"availableColors,omitempty"`
	ColorImages        map[string]string `json:"colorImages,omitempty"`
	Rating             float64           `json:"rating"`
	NumberOfUserRating int               `json:"number_of_user_rating"`
	InStock            bool              `json:"inStock"`
}

// AverageRating returns the mean user rating, or 0 when the product has no
// reviews yet. Rating is stored as a running sum over all reviews.
func (p *Product) AverageRating() float64 {
	if p.NumberOfUserRating <= 0 {
		return 0
	}
	return p.Rating / float64(p.NumberOfUserRating)
}

// ImageForColor returns the variant image for the given color, falling back
// to the product's default image when the color has no mapped image.
func (p *Product) ImageForColor(color string) string {
	if color != "" {
		if img, ok := p.ColorImages[color]; ok && img != "" {
			return img
		}
	}
	return p.ImageURL
}

// DiscountedPrice returns the price after applying the product's percentage
// discount, if any.
func (p *Product) DiscountedPrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}
