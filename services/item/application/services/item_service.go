package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/itemsapi/pkg/events"
	"github.com/ghuser/itemsapi/pkg/logger"
	itemdomain "github.com/ghuser/itemsapi/services/item/domain"
	domainevents "github.com/ghuser/itemsapi/services/item/domain/events"
	"github.com/ghuser/itemsapi/services/item/domain/models"
	"github.com/ghuser/itemsapi/services/item/domain/repositories"
)

// ItemService orchestrates the item store and publishes lifecycle events.
// Each method is one independent unit of work — there are no cross-request
// transactions. Event publishing is best-effort: a publish failure is logged
// and never fails the request that triggered it.
type ItemService struct {
	repo repositories.ItemRepository
	bus  *events.EventBus
	log  logger.Logger
}

// NewItemService returns an ItemService wired with the given store, bus, and logger.
// The bus may be nil, in which case no events are published.
func NewItemService(repo repositories.ItemRepository, bus *events.EventBus, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, bus: bus, log: log}
}

// Create validates the name and stores a new Item, publishing ItemCreatedEvent
// on success. The store assigns the id and timestamp.
func (s *ItemService) Create(ctx context.Context, name, description string) (models.Item, error) {
	if _, err := models.NewItemName(name); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", itemdomain.ErrNameRequired, err)
	}

	item, err := s.repo.Create(ctx, name, description)
	if err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemCreated, domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name,
		OccurredAt: item.CreatedAt,
	})

	return item, nil
}

// GetByID retrieves an Item by id. Returns ErrItemNotFound if it does not exist.
func (s *ItemService) GetByID(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List returns all items in creation order.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Delete removes an item by id, publishing ItemDeletedEvent on success.
// Returns ErrItemNotFound if no matching item exists.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// publish marshals event and sends it on topic. Failures are logged, not returned.
func (s *ItemService) publish(ctx context.Context, topic string, event any) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal event", "topic", topic, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.ErrorContext(ctx, "publish event", "topic", topic, "error", err)
	}
}
