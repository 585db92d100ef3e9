package services

import (
	"github.com/ghuser/itemsapi/pkg/app"
	"github.com/ghuser/itemsapi/services/item/domain/repositories"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the
// Application container. The repository is passed in by the caller so the
// process entry point can seed it before the server accepts traffic.
func New(a *app.Application, repo repositories.ItemRepository) *Services {
	return &Services{
		Item: NewItemService(repo, a.EventBus, a.Logger),
	}
}
