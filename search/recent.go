package search

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"suuq-storefront/storage"
)

// StorageKey is the durable-storage key the search history lives under.
const StorageKey = "recentSearches"

// MaxRecent bounds how many search terms are kept.
const MaxRecent = 5

// History keeps the visitor's most recent search terms, newest first,
// de-duplicated, persisted to durable storage on every change.
type History struct {
	mu      sync.Mutex
	terms   []string
	storage *storage.Store
}

// NewHistory hydrates a search history from durable storage. Corrupt data
// is discarded and the history starts empty.
func NewHistory(st *storage.Store) *History {
	h := &History{storage: st}
	h.hydrate()
	return h
}

func (h *History) hydrate() {
	if h.storage == nil {
		return
	}

	raw, ok, err := h.storage.Get(StorageKey)
	if err != nil {
		log.Printf("Failed to read recent searches: %v", err)
		return
	}
	if !ok {
		return
	}

	var terms []string
	if err := json.Unmarshal([]byte(raw), &terms); err != nil {
		log.Printf("Failed to parse recent searches, discarding: %v", err)
		if err := h.storage.Delete(StorageKey); err != nil {
			log.Printf("Failed to clear corrupted search history: %v", err)
		}
		return
	}
	if len(terms) > MaxRecent {
		terms = terms[:MaxRecent]
	}
	h.terms = terms
}

func (h *History) persist() {
	if h.storage == nil {
		return
	}

	if len(h.terms) == 0 {
		if err := h.storage.Delete(StorageKey); err != nil {
			log.Printf("Failed to clear search history: %v", err)
		}
		return
	}

	data, err := json.Marshal(h.terms)
	if err != nil {
		log.Printf("Failed to serialize search history: %v", err)
		return
	}
	if err := h.storage.Put(StorageKey, string(data)); err != nil {
		log.Printf("Failed to save search history: %v", err)
	}
}

// Record adds a search term to the front of the history, removing any
// earlier occurrence and trimming to the most recent MaxRecent terms.
// Blank terms are ignored.
func (h *History) Record(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	updated := []string{term}
	for _, t := range h.terms {
		if t != term {
			updated = append(updated, t)
		}
	}
	if len(updated) > MaxRecent {
		updated = updated[:MaxRecent]
	}
	h.terms = updated

	h.persist()
}

// Terms returns the history, most recent first.
func (h *History) Terms() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	terms := make([]string, len(h.terms))
	copy(terms, h.terms)
	return terms
}

// Clear empties the history and removes its storage key.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.terms = nil
	h.persist()
}
