package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ghuser/itemsapi/pkg/errhttp"
	"github.com/ghuser/itemsapi/pkg/httpx"
	"github.com/ghuser/itemsapi/pkg/logger"
	appsvcs "github.com/ghuser/itemsapi/services/item/application/services"
	itemdomain "github.com/ghuser/itemsapi/services/item/domain"
)

// DeleteItemResponse is returned by a successful DELETE /api/items/{id}.
type DeleteItemResponse struct {
	Message string `json:"message"`
}

// DeleteItemHandler handles DELETE /api/items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, log logger.Logger) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, log: log}
}

// Execute removes the item with the requested id. Remaining items keep their
// ids; deleted ids are never reissued.
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseItemID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "Endpoint not found")
		return
	}

	h.log.InfoContext(ctx, "deleting item", "item_id", id)

	if err := h.svc.Item.Delete(ctx, id); err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			h.log.WarnContext(ctx, "item not found for deletion", "item_id", id)
		} else {
			h.log.ErrorContext(ctx, "delete item failed", "item_id", id, "error", err)
		}
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(ctx, "deleted item", "item_id", id)
	httpx.JSON(w, http.StatusOK, DeleteItemResponse{
		Message: fmt.Sprintf("Item %d deleted successfully", id),
	})
}
