// Package errhttp maps domain sentinel errors to fixed HTTP error responses.
// Add a case to WriteError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/itemsapi/pkg/httpx"
	itemdomain "github.com/ghuser/itemsapi/services/item/domain"
)

// WriteError maps err to an HTTP status code and writes the corresponding
// fixed JSON error body. Uses errors.Is() so wrapped sentinel errors are
// matched correctly. Unrecognized errors answer the generic 500 body —
// internal details never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, itemdomain.ErrNameRequired):
		httpx.JSONError(w, http.StatusBadRequest, "Name is required")
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
