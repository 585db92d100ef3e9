// Package memory implements the item repository on process-local state.
// The store is volatile: contents are lost when the process exits, and
// nothing is shared across instances.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	itemdomain "github.com/ghuser/itemsapi/services/item/domain"
	"github.com/ghuser/itemsapi/services/item/domain/models"
)

// ItemRepository is the authoritative in-memory holder of items.
//
// A single RWMutex guards both the item slice and the id counter: Create and
// Delete take the write lock, List and GetByID the read lock, so id
// allocation never races and readers never observe a half-applied mutation.
// Ids are monotonic and never reused — deleting an item does not free its id.
type ItemRepository struct {
	mu     sync.RWMutex
	items  []models.Item
	nextID int64
}

// NewItemRepository returns an empty repository. The first created item
// receives id 1.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{nextID: 1}
}

// List returns a copy of all items in insertion order. Never fails.
func (r *ItemRepository) List(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID returns a copy of the item with the given id, or ErrItemNotFound.
func (r *ItemRepository) GetByID(_ context.Context, id int64) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, fmt.Errorf("get item %d: %w", id, itemdomain.ErrItemNotFound)
}

// Create allocates the next id, stamps the current timestamp, and appends the
// new item, all under one write lock. Returns ErrNameRequired for an empty name.
func (r *ItemRepository) Create(_ context.Context, name, description string) (models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", itemdomain.ErrNameRequired, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	it := models.Item{
		ID:          r.nextID,
		Name:        itemName.String(),
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	r.nextID++
	r.items = append(r.items, it)
	return it, nil
}

// Delete removes the item with the given id or returns ErrItemNotFound.
// Surviving items keep their ids and relative order; the id counter is
// untouched so deleted ids are never reissued.
func (r *ItemRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete item %d: %w", id, itemdomain.ErrItemNotFound)
}
