package controllers

import (
	"log"
	"net/http"

	"github.com/braylark/ingyn-frontend-sub000/generation"
	"github.com/braylark/ingyn-frontend-sub000/models"
	"github.com/braylark/ingyn-frontend-sub000/types"
	"github.com/braylark/ingyn-frontend-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AmbassadorController struct {
	DB        *gorm.DB
	Generator *generation.Client
}

type UpdateProfileRequest struct {
	Name               *string `json:"name"`
	BrandStory         *string `json:"brand_story"`
	PrimaryFocus       *string `json:"primary_focus"`
	ContentKeywords    *string `json:"content_keywords"`
	UniqueTrait        *string `json:"unique_trait"`
	Personality        *string `json:"personality"`
	TargetAudience     *string `json:"target_audience"`
	AudienceChallenges *string `json:"audience_challenges"`
	DesiredFeeling     *string `json:"desired_feeling"`
	ExamplePhrases     *string `json:"example_phrases"`
	AvoidedPhrases     *string `json:"avoided_phrases"`
	CTAStyle           *string `json:"cta_style"`
}

func NewAmbassadorController(db *gorm.DB, generator *generation.Client) *AmbassadorController {
	return &AmbassadorController{DB: db, Generator: generator}
}

func (ac *AmbassadorController) profile(c *gin.Context) (*models.AmbassadorProfile, bool) {
	session := utils.GetSession(c)

	var profile models.AmbassadorProfile
	if err := ac.DB.Where("session_id = ?", session.ID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Training profile not found", "success": false})
		return nil, false
	}
	return &profile, true
}

func (ac *AmbassadorController) respond(c *gin.Context, profile *models.AmbassadorProfile) {
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"profile":         profile,
		"section":         profile.SectionName(),
		"preview":         profile.PreviewSummary(),
		"preview_visible": profile.PreviewVisible(),
	})
}

func (ac *AmbassadorController) GetProfile(c *gin.Context) {
	profile, ok := ac.profile(c)
	if !ok {
		return
	}
	ac.respond(c, profile)
}

// UpdateProfile applies a partial update to the scalar training fields. The
// preview is recomputed from scratch on every read, never cached.
func (ac *AmbassadorController) UpdateProfile(c *gin.Context) {
	profile, ok := ac.profile(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&profile.Name, req.Name)
	apply(&profile.BrandStory, req.BrandStory)
	apply(&profile.PrimaryFocus, req.PrimaryFocus)
	apply(&profile.ContentKeywords, req.ContentKeywords)
	apply(&profile.UniqueTrait, req.UniqueTrait)
	apply(&profile.Personality, req.Personality)
	apply(&profile.TargetAudience, req.TargetAudience)
	apply(&profile.AudienceChallenges, req.AudienceChallenges)
	apply(&profile.DesiredFeeling, req.DesiredFeeling)
	apply(&profile.ExamplePhrases, req.ExamplePhrases)
	apply(&profile.AvoidedPhrases, req.AvoidedPhrases)
	apply(&profile.CTAStyle, req.CTAStyle)

	if err := ac.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "success": false})
		return
	}
	ac.respond(c, profile)
}

func (ac *AmbassadorController) ToggleValue(c *gin.Context) {
	ac.toggleTag(c, "value")
}

func (ac *AmbassadorController) ToggleTheme(c *gin.Context) {
	ac.toggleTag(c, "theme")
}

func (ac *AmbassadorController) toggleTag(c *gin.Context, kind string) {
	profile, ok := ac.profile(c)
	if !ok {
		return
	}

	var input struct {
		Tag string `json:"tag" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	switch kind {
	case "value":
		if !types.IsValidBrandValue(input.Tag) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown brand value", "success": false})
			return
		}
		profile.ToggleValue(input.Tag)
	case "theme":
		if !types.IsValidContentTheme(input.Tag) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown content theme", "success": false})
			return
		}
		profile.ToggleTheme(input.Tag)
	}

	if err := ac.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "success": false})
		return
	}
	ac.respond(c, profile)
}

// SetTone updates one of the four tone sliders.
func (ac *AmbassadorController) SetTone(c *gin.Context) {
	profile, ok := ac.profile(c)
	if !ok {
		return
	}

	key := c.Param("key")
	if !types.IsValidToneKey(key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tone attribute", "success": false})
		return
	}

	var input struct {
		Value *int `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	profile.SetTone(key, *input.Value)

	if err := ac.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "success": false})
		return
	}
	ac.respond(c, profile)
}

// NextSection moves forward one tab; no-op on the last tab.
func (ac *AmbassadorController) NextSection(c *gin.Context) {
	profile, ok := ac.profile(c)
	if !ok {
		return
	}
	profile.NextSection()
	if err := ac.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "success": false})
		return
	}
	ac.respond(c, profile)
}

func (ac *AmbassadorController) PreviousSection(c *gin.Context) {
	profile, ok := ac.profile(c)
	if !ok {
		return
	}
	profile.PreviousSection()
	if err := ac.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "success": false})
		return
	}
	ac.respond(c, profile)
}

// SkipSection advances one tab; on the final tab it completes the whole flow
// instead.
func (ac *AmbassadorController) SkipSection(c *gin.Context) {
	profile, ok := ac.profile(c)
	if !ok {
		return
	}
	if profile.SkipSection() {
		ac.complete(c, profile)
		return
	}
	if err := ac.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "success": false})
		return
	}
	ac.respond(c, profile)
}

// Complete finishes the training flow from the final section.
func (ac *AmbassadorController) Complete(c *gin.Context) {
	profile, ok := ac.profile(c)
	if !ok {
		return
	}
	profile.Completed = true
	ac.complete(c, profile)
}

func (ac *AmbassadorController) complete(c *gin.Context, profile *models.AmbassadorProfile) {
	session := utils.GetSession(c)

	if err := ac.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "success": false})
		return
	}

	// Best effort: register the character with the generation backend. The
	// flow completes either way.
	character := map[string]interface{}{
		"name":         profile.Name,
		"story":        profile.BrandStory,
		"focus":        profile.PrimaryFocus,
		"values":       profile.SelectedValues,
		"themes":       profile.SelectedThemes,
		"tones":        profile.ToneSliders,
		"personality":  profile.Personality,
		"audience":     profile.TargetAudience,
		"cta_style":    profile.CTAStyle,
		"unique_trait": profile.UniqueTrait,
	}
	if _, err := ac.Generator.CreateCharacter(c.Request.Context(), character); err != nil {
		log.Printf("create-character call failed: %v", err)
	}

	notify(ac.DB, session.ID, models.NotificationSuccess, "Your AI ambassador is ready!")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Ambassador training complete",
		"profile": profile,
	})
}
