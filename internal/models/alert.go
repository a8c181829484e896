package models

import "time"

// CivicAlert is a public announcement. Type is one of info, warning, urgent.
// Inactive alerts are hidden from the public listing but kept in the store.
type CivicAlert struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Category   string    `json:"category"`
	ActionText *string   `json:"actionText"`
	ActionURL  *string   `json:"actionUrl"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}
