package models

import "testing"

func TestNewItemName_Valid(t *testing.T) {
	n, err := NewItemName("Widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "Widget" {
		t.Errorf("got %q, want Widget", n.String())
	}
}

func TestNewItemName_Empty(t *testing.T) {
	if _, err := NewItemName(""); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestNewItemName_WhitespaceAllowed(t *testing.T) {
	// Only presence is validated; any non-empty string is a valid name.
	if _, err := NewItemName(" "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
