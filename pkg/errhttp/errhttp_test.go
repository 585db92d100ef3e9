package errhttp_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemsapi/pkg/errhttp"
	itemdomain "github.com/ghuser/itemsapi/services/item/domain"
)

func writeAndDecode(t *testing.T, err error) (int, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	errhttp.WriteError(rr, err)
	var body map[string]string
	if derr := json.NewDecoder(rr.Body).Decode(&body); derr != nil {
		t.Fatalf("decode: %v", derr)
	}
	return rr.Code, body["error"]
}

func TestWriteError_NotFound(t *testing.T) {
	code, msg := writeAndDecode(t, itemdomain.ErrItemNotFound)
	if code != http.StatusNotFound || msg != "Item not found" {
		t.Errorf("got (%d, %q), want (404, Item not found)", code, msg)
	}
}

func TestWriteError_NameRequired(t *testing.T) {
	code, msg := writeAndDecode(t, itemdomain.ErrNameRequired)
	if code != http.StatusBadRequest || msg != "Name is required" {
		t.Errorf("got (%d, %q), want (400, Name is required)", code, msg)
	}
}

func TestWriteError_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound)
	code, msg := writeAndDecode(t, wrapped)
	if code != http.StatusNotFound || msg != "Item not found" {
		t.Errorf("got (%d, %q), want (404, Item not found)", code, msg)
	}
}

func TestWriteError_UnknownErrorIsGeneric(t *testing.T) {
	code, msg := writeAndDecode(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Internal server error" {
		t.Errorf("internal details leaked: %q", msg)
	}
}
