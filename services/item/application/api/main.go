package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemsapi/pkg/app"
	"github.com/ghuser/itemsapi/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemsapi/services/item/application/services"
	"github.com/ghuser/itemsapi/services/item/domain/repositories"
)

// ItemRoutes registers item endpoints on the provided chi router.
// The {id} segment admits digits only; any other shape falls through to the
// router's NotFound handler ("Endpoint not found").
func ItemRoutes(r chi.Router, a *app.Application, repo repositories.ItemRepository) {
	svcs := appsvcs.New(a, repo)
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs, a.Logger).Execute)
		r.Post("/", handlers.NewCreateItemHandler(svcs, a.Logger).Execute)
		r.Get("/{id:[0-9]+}", handlers.NewGetItemHandler(svcs, a.Logger).Execute)
		r.Delete("/{id:[0-9]+}", handlers.NewDeleteItemHandler(svcs, a.Logger).Execute)
	})
}
