package models

import (
	"time"
)

// ConnectedAccount marks a social platform as connected for a session. No
// real platform API is involved; connection is state only.
type ConnectedAccount struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID uint      `gorm:"not null;uniqueIndex:uk_connected_session_platform" json:"-"`
	Platform  string    `gorm:"type:varchar(15);not null;uniqueIndex:uk_connected_session_platform" json:"platform"`
	CreatedAt time.Time `json:"connected_at"`
}
