package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/braylark/ingyn-frontend-sub000/generation"
	"github.com/braylark/ingyn-frontend-sub000/models"
	"github.com/braylark/ingyn-frontend-sub000/types"
	"github.com/braylark/ingyn-frontend-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentController struct {
	DB        *gorm.DB
	Generator *generation.Client
}

func NewContentController(db *gorm.DB, generator *generation.Client) *ContentController {
	return &ContentController{DB: db, Generator: generator}
}

// GetPosts lists one collection. "my" posts are newest first (generated posts
// are prepended); suggested posts keep their seed order.
func (cc *ContentController) GetPosts(c *gin.Context) {
	session := utils.GetSession(c)

	collection := c.DefaultQuery("collection", types.CollectionSuggested)
	if collection != types.CollectionMy && collection != types.CollectionSuggested {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown collection", "success": false})
		return
	}

	order := "id"
	if collection == types.CollectionMy {
		order = "id DESC"
	}

	var posts []models.Post
	if err := cc.DB.Where("session_id = ? AND collection = ?", session.ID, collection).
		Order(order).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "collection": collection, "posts": posts})
}

// GenerateCustomPost runs the custom generation sequence: validate the
// prompt, request an image, then request a caption with a deterministic
// fallback if the text call fails for any reason.
func (cc *ContentController) GenerateCustomPost(c *gin.Context) {
	session := utils.GetSession(c)

	var input struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		notify(cc.DB, session.ID, models.NotificationError, "Please describe the content you want to create")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt must not be empty", "success": false})
		return
	}

	imageResp, err := cc.Generator.GenerateImage(c.Request.Context(), prompt, nil)
	if err != nil {
		notify(cc.DB, session.ID, models.NotificationError, "Content generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "success": false})
		return
	}

	images := generation.ExtractImages(imageResp)
	if len(images) == 0 {
		notify(cc.DB, session.ID, models.NotificationError, "Content generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "no image returned", "success": false})
		return
	}

	caption := cc.resolveCaption(c, prompt)

	post := models.Post{
		SessionID:      session.ID,
		Collection:     types.CollectionMy,
		Image:          images[0],
		Caption:        caption,
		Hashtags:       types.DefaultHashtags,
		PredictedReach: utils.RandomPredictedReach(),
		BestTime:       utils.RandomBestTime(),
		Status:         types.PostStatusDraft,
	}
	if err := cc.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post", "success": false})
		return
	}

	// The generated post lands in "my posts" and the hub switches to that tab.
	session.ContentTab = types.CollectionMy
	cc.DB.Save(session)

	notify(cc.DB, session.ID, models.NotificationSuccess, "Your content is ready!")

	c.JSON(http.StatusCreated, gin.H{"success": true, "post": post})
}

// resolveCaption asks the backend for a caption and falls back to a
// deterministic template built from the prompt. The fallback never fails the
// overall operation.
func (cc *ContentController) resolveCaption(c *gin.Context, prompt string) string {
	instruction := fmt.Sprintf(
		"Write a short, engaging social media caption for a post about: %s. End with a call to action.",
		prompt)

	textResp, err := cc.Generator.GenerateText(c.Request.Context(), instruction, nil)
	if err == nil {
		if caption := generation.ExtractText(textResp); caption != "" {
			return caption
		}
	}
	return fallbackCaption(prompt)
}

func fallbackCaption(prompt string) string {
	return fmt.Sprintf("%s ✨ Bringing your vision to life, one post at a time. What do you think?", prompt)
}

// CreatePost adds a user-authored post from already-hosted media, e.g. an
// image uploaded through the media endpoint.
func (cc *ContentController) CreatePost(c *gin.Context) {
	session := utils.GetSession(c)

	var input struct {
		Image    string   `json:"image" binding:"required"`
		Caption  string   `json:"caption"`
		Hashtags []string `json:"hashtags"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	hashtags := input.Hashtags
	if len(hashtags) == 0 {
		hashtags = types.DefaultHashtags
	}

	post := models.Post{
		SessionID:      session.ID,
		Collection:     types.CollectionMy,
		Image:          input.Image,
		Caption:        input.Caption,
		Hashtags:       hashtags,
		PredictedReach: utils.RandomPredictedReach(),
		BestTime:       utils.RandomBestTime(),
		Status:         types.PostStatusDraft,
	}
	if err := cc.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "post": post})
}

// GenerateSuggestedPost synthesizes one more suggested post from the sample
// pool. Independent of the generation backend.
func (cc *ContentController) GenerateSuggestedPost(c *gin.Context) {
	session := utils.GetSession(c)

	var count int64
	cc.DB.Model(&models.Post{}).
		Where("session_id = ? AND collection = ?", session.ID, types.CollectionSuggested).
		Count(&count)

	sample := types.SuggestedPool[int(count)%len(types.SuggestedPool)]
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
	if err := cc.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "post": post})
}

// BeginEditCaption enters inline edit mode with a draft caption.
func (cc *ContentController) BeginEditCaption(c *gin.Context) {
	post, ok := cc.findPost(c)
	if !ok {
		return
	}

	var input struct {
		Caption *string `json:"caption" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	post.Editing = true
	post.CaptionDraft = *input.Caption
	if err := cc.DB.Save(post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

// SaveCaption commits the draft and exits edit mode. The draft is not
// validated.
func (cc *ContentController) SaveCaption(c *gin.Context) {
	post, ok := cc.findPost(c)
	if !ok {
		return
	}

	if !post.Editing {
		c.JSON(http.StatusConflict, gin.H{"error": "Post is not being edited", "success": false})
		return
	}

	post.Caption = post.CaptionDraft
	post.Editing = false
	post.CaptionDraft = ""
	if err := cc.DB.Save(post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

// DeletePost removes a post by id from the designated collection only; the
// other collection is never searched.
func (cc *ContentController) DeletePost(c *gin.Context) {
	session := utils.GetSession(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id", "success": false})
		return
	}

	collection := c.Query("collection")
	if collection != types.CollectionMy && collection != types.CollectionSuggested {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown collection", "success": false})
		return
	}

	result := cc.DB.Where("id = ? AND session_id = ? AND collection = ?",
		postID, session.ID, collection).Delete(&models.Post{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
}

func (cc *ContentController) findPost(c *gin.Context) (*models.Post, bool) {
	session := utils.GetSession(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id", "success": false})
		return nil, false
	}

	var post models.Post
	if err := cc.DB.Where("id = ? AND session_id = ?", postID, session.ID).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "success": false})
		return nil, false
	}
	return &post, true
}
