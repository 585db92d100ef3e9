package handlers

import (
	"net/http"

	"github.com/ghuser/itemsapi/pkg/errhttp"
	"github.com/ghuser/itemsapi/pkg/httpx"
	"github.com/ghuser/itemsapi/pkg/logger"
	appsvcs "github.com/ghuser/itemsapi/services/item/application/services"
	"github.com/ghuser/itemsapi/services/item/domain/models"
)

// ListItemsResponse is returned by GET /api/items.
type ListItemsResponse struct {
	Items []models.Item `json:"items"`
	Count int           `json:"count"`
}

// ListItemsHandler handles GET /api/items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services, log logger.Logger) *ListItemsHandler {
	return &ListItemsHandler{svc: svc, log: log}
}

// Execute returns every stored item in creation order plus the total count.
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.log.InfoContext(ctx, "fetching all items")

	items, err := h.svc.Item.List(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "list items failed", "error", err)
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListItemsResponse{
		Items: items,
		Count: len(items),
	})
}
