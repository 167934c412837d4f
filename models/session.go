package models

import (
	"time"
)

// Session is the per-client in-memory state container. Everything a screen
// renders (training profile, post collections, gate state, active page) hangs
// off a session row and disappears when the process restarts.
type Session struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ActivePage string `gorm:"type:varchar(30);not null" json:"active_page"`
	ViewMode   string `gorm:"type:varchar(10);not null" json:"view_mode"`
	ContentTab string `gorm:"type:varchar(10);not null" json:"content_tab"`

	// Set once during the gate sequences, never reset.
	HasAccount      bool   `json:"has_account"`
	HasSubscription bool   `json:"has_subscription"`
	Plan            string `gorm:"type:varchar(30)" json:"plan,omitempty"`
	AccountID       *uint  `json:"account_id,omitempty"`
}
