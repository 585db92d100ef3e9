package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist in the store.
	ErrItemNotFound = errors.New("item not found")

	// ErrNameRequired indicates a create request without a non-empty name.
	ErrNameRequired = errors.New("name is required")
)
