package models

import "time"

// User is a feed identity resolved from a display name.
// Usernames are normalized (trimmed, lowercased) by the HTTP layer
// before they reach the store, so uniqueness here is case-insensitive
// in practice.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
