package controllers

import (
	"github.com/braylark/ingyn-frontend-sub000/models"
	"gorm.io/gorm"
)

type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// notify records a transient toast for the session.
func notify(db *gorm.DB, sessionID uint, level, message string) {
	db.Create(&models.Notification{
		SessionID: sessionID,
		Level:     level,
		Message:   message,
	})
}
