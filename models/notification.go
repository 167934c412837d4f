package models

import (
	"time"
)

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is a transient toast message. Rows are deleted as soon as the
// client fetches them.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"-"`
	Level     string    `gorm:"type:varchar(10);not null" json:"level"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
