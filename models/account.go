package models

import (
	"time"
)

// Account is created by the account step of a gate sequence. The password is
// hashed at creation but never checked again in this service; there is no
// login flow.
type Account struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	SessionID uint      `gorm:"not null;index" json:"-"`
	FullName  string    `gorm:"not null" json:"full_name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
}
