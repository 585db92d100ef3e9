package repositories

import (
	"context"

	"github.com/ghuser/itemsapi/services/item/domain/models"
)

// ItemRepository is the storage interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations must be safe for concurrent use: id allocation in Create
// never double-assigns, and readers never observe a partially-applied
// mutation. List returns items in insertion order.
type ItemRepository interface {
	// List returns all items, oldest first.
	List(ctx context.Context) ([]models.Item, error)

	// GetByID retrieves an item by id. Returns domain.ErrItemNotFound if absent.
	GetByID(ctx context.Context, id int64) (models.Item, error)

	// Create stores a new item with the next free id and the current
	// timestamp, returning a copy of it. Returns domain.ErrNameRequired
	// when name is empty.
	Create(ctx context.Context, name, description string) (models.Item, error)

	// Delete removes an item by id. Returns domain.ErrItemNotFound if absent.
	// Remaining items keep their ids and order.
	Delete(ctx context.Context, id int64) error
}
