package models

import (
	"time"
)

// Post belongs to exactly one of two disjoint collections per session:
// "my" (user-authored) or "suggested" (system-proposed). There is no transfer
// operation between collections.
type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SessionID  uint     `gorm:"not null;index" json:"-"`
	Collection string   `gorm:"type:varchar(10);not null;index" json:"collection"`
	Image      string   `gorm:"type:text;not null" json:"image"`
	Caption    string   `gorm:"type:text" json:"caption"`
	Hashtags   []string `gorm:"serializer:json" json:"hashtags"`

	// Reason is the AI rationale, present only on suggested posts.
	Reason string `gorm:"type:text" json:"reason,omitempty"`

	// Display-only strings, randomly generated at creation time.
	PredictedReach string `gorm:"type:varchar(20)" json:"predictedReach"`
	BestTime       string `gorm:"type:varchar(40)" json:"bestTime"`

	Status      string     `gorm:"type:varchar(15);not null" json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`

	// Inline caption editing: a draft is held while editing and committed by
	// the save action without validation.
	Editing      bool   `json:"editing"`
	CaptionDraft string `gorm:"type:text" json:"caption_draft,omitempty"`
}
