package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/braylark/ingyn-frontend-sub000/models"
	"github.com/braylark/ingyn-frontend-sub000/types"
	"github.com/braylark/ingyn-frontend-sub000/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

// CreateSession opens a fresh session: empty training profile, seeded
// suggested posts, both gates idle. Returns a bearer token naming the
// session.
func (sc *SessionController) CreateSession(c *gin.Context) {
	session := models.Session{
		Token:      uuid.New().String(),
		ActivePage: types.DEFAULT_PAGE,
		ViewMode:   types.DEFAULT_VIEW_MODE,
		ContentTab: types.CollectionSuggested,
	}

	tx := sc.DB.Begin()

	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session", "success": false})
		return
	}

	tones := make(map[string]int, len(types.ToneKeys))
	for _, key := range types.ToneKeys {
		tones[key] = types.DEFAULT_TONE
	}
	profile := models.AmbassadorProfile{
		SessionID:   session.ID,
		ToneSliders: tones,
	}
	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile", "success": false})
		return
	}

	for _, kind := range []models.GateKind{models.GateKindAccount, models.GateKindSubscription} {
		if err := tx.Create(&models.Gate{SessionID: session.ID, Kind: kind}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create gates", "success": false})
			return
		}
	}

	for _, sample := range types.SuggestedPool {
		post := models.Post{
			SessionID:      session.ID,
			Collection:     types.CollectionSuggested,
			Image:          sample.Image,
			Caption:        sample.Caption,
			Reason:         sample.Reason,
			Hashtags:       types.DefaultHashtags,
			PredictedReach: utils.RandomPredictedReach(),
			BestTime:       utils.RandomBestTime(),
			Status:         types.PostStatusDraft,
		}
		if err := tx.Create(&post).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed posts", "success": false})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session", "success": false})
		return
	}

	tokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": session.Token,
		"exp":        time.Now().Add(time.Hour * 24 * 7).Unix(),
	})
	token, err := tokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"token_type": "Bearer",
		"token":      token,
		"session":    session,
	})
}

func (sc *SessionController) GetSession(c *gin.Context) {
	session := utils.GetSession(c)

	var gates []models.Gate
	sc.DB.Where("session_id = ?", session.ID).Order("id").Find(&gates)

	var connected []models.ConnectedAccount
	sc.DB.Where("session_id = ?", session.ID).Order("id").Find(&connected)

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"session":            session,
		"gates":              gates,
		"connected_accounts": connected,
	})
}

// Navigate switches the active page.
func (sc *SessionController) Navigate(c *gin.Context) {
	session := utils.GetSession(c)

	var input struct {
		Page string `json:"page" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	valid := false
	for _, page := range types.Pages {
		if page == input.Page {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown page", "success": false})
		return
	}

	session.ActivePage = input.Page
	if err := sc.DB.Save(session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "active_page": session.ActivePage})
}

// SetViewMode toggles grid/list display. Pure display state, post data is
// untouched.
func (sc *SessionController) SetViewMode(c *gin.Context) {
	session := utils.GetSession(c)

	var input struct {
		Mode string `json:"mode" binding:"required,oneof=grid list"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	session.ViewMode = input.Mode
	if err := sc.DB.Save(session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "view_mode": session.ViewMode})
}

// GetNotifications drains the session's pending toasts.
func (sc *SessionController) GetNotifications(c *gin.Context) {
	session := utils.GetSession(c)

	var notifications []models.Notification
	if err := sc.DB.Where("session_id = ?", session.ID).Order("id").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications", "success": false})
		return
	}

	if len(notifications) > 0 {
		sc.DB.Where("session_id = ?", session.ID).Delete(&models.Notification{})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}
