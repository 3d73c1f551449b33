package cart

import (
	"encoding/json"
	"log"
	"math"
	"sync"

	"suuq-storefront/models"
	"suuq-storefront/storage"
)

// StorageKey is the durable-storage key the serialized cart lives under.
const StorageKey = "shoppingCart"

// Store is the single source of truth for cart contents. Line items keep
// insertion order, hold at most one entry per cart item id, and are mirrored
// to durable storage after every mutation.
type Store struct {
	mu          sync.Mutex
	items       []models.CartLineItem
	storage     *storage.Store
	subscribers []func()
}

// NewStore hydrates a cart store from durable storage. A corrupt stored
// payload is discarded (and its key removed) rather than failing startup.
func NewStore(st *storage.Store) *Store {
	s := &Store{storage: st}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.storage == nil {
		return
	}

	raw, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		log.Printf("Failed to read stored cart: %v", err)
		return
	}
	if !ok {
		return
	}

	var items []models.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("Failed to parse stored cart, discarding: %v", err)
		if err := s.storage.Delete(StorageKey); err != nil {
			log.Printf("Failed to clear corrupted cart entry: %v", err)
		}
		return
	}

	// Ensure quantity is valid upon loading
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}
	s.items = items
}

// persist mirrors the current cart to durable storage. A non-empty cart is
// written in full; an empty cart removes the key entirely so storage never
// keeps an empty-array sentinel around. Callers must hold s.mu.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}

	if len(s.items) == 0 {
		if err := s.storage.Delete(StorageKey); err != nil {
			log.Printf("Failed to clear cart storage: %v", err)
		}
		return
	}

	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("Failed to serialize cart: %v", err)
		return
	}
	if err := s.storage.Put(StorageKey, string(data)); err != nil {
		log.Printf("Failed to save cart: %v", err)
	}
}

// Subscribe registers fn to be called synchronously after every cart change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Add puts one unit of the product (in the chosen color, if any) into the
// cart. A line item that already exists for that product+color has its
// quantity incremented by 1; otherwise a new line item is appended with
// quantity 1. Always succeeds.
func (s *Store) Add(product models.Product, selectedColor string) {
	s.mu.Lock()

	id := models.CartItemID(product.ID, selectedColor)
	found := false
	for i := range s.items {
		if s.items[i].CartItemID == id {
			s.items[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		// Ensure price is stored as a valid number
		price := product.Price
		if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			price = 0
		}
		s.items = append(s.items, models.CartLineItem{
			CartItemID:    id,
			ProductID:     product.ID,
			Name:          product.Name,
			ImageURL:      product.ImageForColor(selectedColor),
			Price:         price,
			SelectedColor: selectedColor,
			Quantity:      1,
		})
	}

	s.persist()
	s.mu.Unlock()
	s.notify()
}

// Remove deletes the line item with the given cart item id. Removing an
// unknown id is a no-op.
func (s *Store) Remove(cartItemID string) {
	s.mu.Lock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.CartItemID != cartItemID {
			kept = append(kept, item)
		}
	}
	s.items = kept

	s.persist()
	s.mu.Unlock()
	s.notify()
}

// UpdateQuantity sets the quantity of the line item with the given id.
// A quantity of zero or less removes the item instead; an unknown id is a
// no-op.
func (s *Store) UpdateQuantity(cartItemID string, quantity int) {
	if quantity <= 0 {
		s.Remove(cartItemID)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].CartItemID == cartItemID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist()
	s.mu.Unlock()
	s.notify()
}

// Items returns the line items in insertion order.
func (s *Store) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems is the sum of all line-item quantities, recomputed on every
// call.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// CartTotal is the sum of price times quantity over all line items,
// recomputed on every call.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
