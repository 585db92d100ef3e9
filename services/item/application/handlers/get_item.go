package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemsapi/pkg/errhttp"
	"github.com/ghuser/itemsapi/pkg/httpx"
	"github.com/ghuser/itemsapi/pkg/logger"
	appsvcs "github.com/ghuser/itemsapi/services/item/application/services"
	itemdomain "github.com/ghuser/itemsapi/services/item/domain"
)

// GetItemHandler handles GET /api/items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, log logger.Logger) *GetItemHandler {
	return &GetItemHandler{svc: svc, log: log}
}

// Execute returns the item with the requested id or the fixed 404 body.
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseItemID(r)
	if err != nil {
		// The route pattern admits digits only, so this is a routing-level
		// mismatch, not an item lookup failure.
		httpx.JSONError(w, http.StatusNotFound, "Endpoint not found")
		return
	}

	h.log.InfoContext(ctx, "fetching item", "item_id", id)

	item, err := h.svc.Item.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			h.log.WarnContext(ctx, "item not found", "item_id", id)
		} else {
			h.log.ErrorContext(ctx, "get item failed", "item_id", id, "error", err)
		}
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, item)
}

// parseItemID extracts the numeric {id} path parameter.
func parseItemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
