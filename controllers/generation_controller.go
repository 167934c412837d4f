package controllers

import (
	"net/http"

	"github.com/braylark/ingyn-frontend-sub000/generation"

	"github.com/gin-gonic/gin"
)

// GenerationController exposes the backend's character and video creation
// operations as thin passthroughs. The response shape is backend-defined and
// returned verbatim.
type GenerationController struct {
	Generator *generation.Client
}

func NewGenerationController(generator *generation.Client) *GenerationController {
	return &GenerationController{Generator: generator}
}

func (gc *GenerationController) CreateCharacter(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	resp, err := gc.Generator.CreateCharacter(c.Request.Context(), body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "success": false})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (gc *GenerationController) CreateVideo(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	resp, err := gc.Generator.CreateVideo(c.Request.Context(), body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "success": false})
		return
	}
	c.JSON(http.StatusOK, resp)
}
