package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/braylark/ingyn-frontend-sub000/models"
	"github.com/braylark/ingyn-frontend-sub000/types"
	"github.com/braylark/ingyn-frontend-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GateController drives both gate instances: the account gate in front of
// schedule/post/connect actions, and the subscription gate in front of
// social-account connection on the scheduler screen.
type GateController struct {
	DB *gorm.DB
}

type TriggerRequest struct {
	Action   string `json:"action" binding:"required,oneof=schedule post connect"`
	PostID   uint   `json:"post_id"`
	Platform string `json:"platform"`
}

type AccountStepRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// PaymentStepRequest is shape-validated only; nothing is charged.
type PaymentStepRequest struct {
	CardNumber string `json:"card_number" binding:"required,min=12"`
	Expiry     string `json:"expiry" binding:"required"`
	CVC        string `json:"cvc" binding:"required,min=3,max=4"`
	Name       string `json:"name" binding:"required"`
}

func NewGateController(db *gorm.DB) *GateController {
	return &GateController{DB: db}
}

func (gc *GateController) gate(sessionID uint, kind models.GateKind) (*models.Gate, error) {
	var gate models.Gate
	err := gc.DB.Where("session_id = ? AND kind = ?", sessionID, kind).First(&gate).Error
	return &gate, err
}

func (gc *GateController) pendingGate(sessionID uint) *models.Gate {
	var gate models.Gate
	if err := gc.DB.Where("session_id = ? AND current_step <> ''", sessionID).First(&gate).Error; err != nil {
		return nil
	}
	return &gate
}

// Trigger requests a gated action. With the precondition already satisfied
// the action executes immediately; otherwise the action is recorded and the
// first dialog of the sequence opens.
func (gc *GateController) Trigger(c *gin.Context) {
	session := utils.GetSession(c)

	var req TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	action := models.GateAction(req.Action)
	if action == models.GateActionSchedule || action == models.GateActionPost {
		var post models.Post
		if err := gc.DB.Where("id = ? AND session_id = ?", req.PostID, session.ID).First(&post).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "success": false})
			return
		}
	}
	if action == models.GateActionConnect && !types.IsValidPlatform(req.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown platform", "success": false})
		return
	}

	if session.HasAccount {
		gc.executeAction(session, action, req.PostID, req.Platform)
		c.JSON(http.StatusOK, gin.H{"success": true, "executed": true})
		return
	}

	if pending := gc.pendingGate(session.ID); pending != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A gate sequence is already in progress", "success": false})
		return
	}

	gate, err := gc.gate(session.ID, models.GateKindAccount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gate not found", "success": false})
		return
	}

	step := gate.Begin(action, req.PostID, req.Platform)
	if err := gc.DB.Save(gate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gate", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "executed": false, "step": step})
}

// ConnectSocial is the scheduler-screen variant: connecting a social account
// requires an active subscription and runs the pricing/payment/account
// sequence when there is none.
func (gc *GateController) ConnectSocial(c *gin.Context) {
	session := utils.GetSession(c)

	var req struct {
		Platform string `json:"platform" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if !types.IsValidPlatform(req.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown platform", "success": false})
		return
	}

	if session.HasSubscription {
		gc.executeAction(session, models.GateActionConnect, 0, req.Platform)
		c.JSON(http.StatusOK, gin.H{"success": true, "executed": true})
		return
	}

	if pending := gc.pendingGate(session.ID); pending != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A gate sequence is already in progress", "success": false})
		return
	}

	gate, err := gc.gate(session.ID, models.GateKindSubscription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gate not found", "success": false})
		return
	}

	offer := types.GetPricingOffer()
	expires := time.Now().Add(time.Duration(offer.OfferSeconds) * time.Second)

	step := gate.Begin(models.GateActionConnect, 0, req.Platform)
	gate.OfferExpiresAt = &expires
	if err := gc.DB.Save(gate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gate", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"executed":         false,
		"step":             step,
		"offer":            offer,
		"offer_expires_at": expires,
	})
}

// CompletePricing accepts the limited-time offer, the first step of the
// subscription sequence. The countdown is informational; acceptance is not
// rejected after the deadline.
func (gc *GateController) CompletePricing(c *gin.Context) {
	session := utils.GetSession(c)
	gc.completeStep(c, session, models.GateStepPricing)
}

// CompleteAccount finishes the account-creation dialog: the account row is
// created and HasAccount is set immediately, before the rest of the sequence
// runs.
func (gc *GateController) CompleteAccount(c *gin.Context) {
	session := utils.GetSession(c)

	gate := gc.pendingGate(session.ID)
	if gate == nil || gate.CurrentStep != models.GateStepAccount {
		c.JSON(http.StatusConflict, gin.H{"error": "No account step in progress", "success": false})
		return
	}

	var req AccountStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}

	account := models.Account{
		SessionID: session.ID,
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  string(hashedPassword),
	}
	if err := gc.DB.Create(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account", "success": false})
		return
	}

	session.HasAccount = true
	session.AccountID = &account.ID
	if err := gc.DB.Save(session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session", "success": false})
		return
	}

	gc.advance(c, session, gate, models.GateStepAccount)
}

// CompletePayment finishes the payment dialog. Input is validated for shape
// only; no charge happens.
func (gc *GateController) CompletePayment(c *gin.Context) {
	session := utils.GetSession(c)

	gate := gc.pendingGate(session.ID)
	if gate == nil || gate.CurrentStep != models.GateStepPayment {
		c.JSON(http.StatusConflict, gin.H{"error": "No payment step in progress", "success": false})
		return
	}

	var req PaymentStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	gc.advance(c, session, gate, models.GateStepPayment)
}

func (gc *GateController) completeStep(c *gin.Context, session *models.Session, step models.GateStep) {
	gate := gc.pendingGate(session.ID)
	if gate == nil || gate.CurrentStep != step {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("No %s step in progress", step), "success": false})
		return
	}
	gc.advance(c, session, gate, step)
}

func (gc *GateController) advance(c *gin.Context, session *models.Session, gate *models.Gate, step models.GateStep) {
	next, finished, err := gate.Advance(step)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "success": false})
		return
	}

	// An account created in an earlier sequence satisfies the account step
	// of this one; skip straight through.
	if !finished && next == models.GateStepAccount && session.HasAccount {
		next, finished, err = gate.Advance(models.GateStepAccount)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "success": false})
			return
		}
	}

	if !finished {
		if err := gc.DB.Save(gate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gate", "success": false})
			return
		}
		response := gin.H{"success": true, "finished": false, "step": next}
		if next == models.GateStepPayment && gate.Kind == models.GateKindSubscription {
			response["offer"] = types.GetPricingOffer()
		}
		c.JSON(http.StatusOK, response)
		return
	}

	if gate.Kind == models.GateKindSubscription {
		session.HasSubscription = true
		session.Plan = types.GetPricingOffer().Name
		if err := gc.DB.Save(session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session", "success": false})
			return
		}
	}

	action, postID, platform := gate.ResumeToken()
	gc.executeAction(session, action, postID, platform)

	gate.Clear()
	if err := gc.DB.Save(gate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gate", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "finished": true, "executed": true})
}

// Cancel abandons the open dialog sequence. The recorded action is dropped;
// an account already created along the way stays.
func (gc *GateController) Cancel(c *gin.Context) {
	session := utils.GetSession(c)

	gate := gc.pendingGate(session.ID)
	if gate == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No gate sequence in progress", "success": false})
		return
	}

	gate.Cancel()
	if err := gc.DB.Save(gate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gate", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Gate sequence cancelled"})
}

// GetStatus reports both gates and the session preconditions.
func (gc *GateController) GetStatus(c *gin.Context) {
	session := utils.GetSession(c)

	var gates []models.Gate
	if err := gc.DB.Where("session_id = ?", session.ID).Order("id").Find(&gates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gates", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"has_account":      session.HasAccount,
		"has_subscription": session.HasSubscription,
		"gates":            gates,
	})
}

// GetPricing returns the subscription offer shown by the pricing dialog.
func (gc *GateController) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "offer": types.GetPricingOffer()})
}

// executeAction performs the deferred effect and emits its success toast,
// keyed by the recorded action kind.
func (gc *GateController) executeAction(session *models.Session, action models.GateAction, postID uint, platform string) {
	switch action {
	case models.GateActionSchedule:
		var post models.Post
		if err := gc.DB.Where("id = ? AND session_id = ?", postID, session.ID).First(&post).Error; err != nil {
			notify(gc.DB, session.ID, models.NotificationError, "Post no longer exists")
			return
		}
		now := time.Now()
		post.Status = types.PostStatusScheduled
		post.ScheduledAt = &now
		gc.DB.Save(&post)
		notify(gc.DB, session.ID, models.NotificationSuccess,
			fmt.Sprintf("Post scheduled for %s!", post.BestTime))

	case models.GateActionPost:
		var post models.Post
		if err := gc.DB.Where("id = ? AND session_id = ?", postID, session.ID).First(&post).Error; err != nil {
			notify(gc.DB, session.ID, models.NotificationError, "Post no longer exists")
			return
		}
		post.Status = types.PostStatusPosted
		gc.DB.Save(&post)
		notify(gc.DB, session.ID, models.NotificationSuccess, "Your post is live!")

	case models.GateActionConnect:
		connected := models.ConnectedAccount{SessionID: session.ID, Platform: platform}
		gc.DB.Where(&connected).FirstOrCreate(&connected)
		notify(gc.DB, session.ID, models.NotificationSuccess,
			fmt.Sprintf("Connected to %s!", platform))
	}
}
