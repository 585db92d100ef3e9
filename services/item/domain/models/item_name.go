package models

import "errors"

// ItemName is a value object representing a valid item name.
// Presence is the only rule: a name must be a non-empty string.
type ItemName string

// NewItemName constructs a valid ItemName or returns an error for the empty string.
func NewItemName(s string) (ItemName, error) {
	if s == "" {
		return "", errors.New("item name must not be empty")
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
