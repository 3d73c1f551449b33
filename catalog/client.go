// Package catalog fetches product records from the remote catalog service
// and provides the client-side filtering the storefront views use. The
// service is an opaque data source; products are never stored locally.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"suuq-storefront/models"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Products fetches the full product collection.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/data/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("malformed catalog response: %w", err)
	}
	return products, nil
}

// Product fetches the collection and returns the product with the given
// id. The second return value reports whether it was found.
func (c *Client) Product(ctx context.Context, id string) (*models.Product, bool, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], true, nil
		}
	}
	return nil, false, nil
}

// Filter returns the products whose name or category contains the query,
// case-insensitively. An empty query matches everything.
func Filter(products []models.Product, query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Discounted returns the products carrying a discount.
func Discounted(products []models.Product) []models.Product {
	var discounted []models.Product
	for _, p := range products {
		if p.Discount > 0 {
			discounted = append(discounted, p)
		}
	}
	return discounted
}
