package models

import "time"

// Item is the core aggregate for this bounded context. Items are immutable
// after creation: there is no update operation, only create and delete.
// ID and CreatedAt are assigned by the store, never by clients.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
