package utils

import (
	"github.com/braylark/ingyn-frontend-sub000/models"
	"github.com/gin-gonic/gin"
)

type contextKey string

const SessionContextKey contextKey = "session"

func GetSession(c *gin.Context) *models.Session {
	value, exists := c.Get(string(SessionContextKey))
	if !exists {
		return nil
	}
	if session, ok := value.(*models.Session); ok {
		return session
	}
	return nil
}
