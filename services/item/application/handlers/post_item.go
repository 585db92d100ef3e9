package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ghuser/itemsapi/pkg/errhttp"
	"github.com/ghuser/itemsapi/pkg/httpx"
	"github.com/ghuser/itemsapi/pkg/logger"
	pkgvalidator "github.com/ghuser/itemsapi/pkg/validator"
	appsvcs "github.com/ghuser/itemsapi/services/item/application/services"
	itemdomain "github.com/ghuser/itemsapi/services/item/domain"
)

// CreateItemRequest is the request body for POST /api/items.
// Name is the only required field; description defaults to the empty string.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CreateItemHandler handles POST /api/items requests.
type CreateItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewCreateItemHandler returns a CreateItemHandler backed by the given services.
func NewCreateItemHandler(svc *appsvcs.Services, log logger.Logger) *CreateItemHandler {
	return &CreateItemHandler{svc: svc, log: log}
}

// Execute creates a new item. The store assigns id and created_at; clients
// can never supply them.
func (h *CreateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.ErrorContext(ctx, "invalid request body", "error", err)
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := pkgvalidator.Validate(&req); err != nil {
		h.log.ErrorContext(ctx, "invalid request data",
			"fields", pkgvalidator.FormatValidationErrors(err))
		errhttp.WriteError(w, itemdomain.ErrNameRequired)
		return
	}

	item, err := h.svc.Item.Create(ctx, req.Name, req.Description)
	if err != nil {
		h.log.ErrorContext(ctx, "create item failed", "error", err)
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(ctx, "created item", "item_id", item.ID)
	httpx.JSON(w, http.StatusCreated, item)
}
