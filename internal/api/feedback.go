package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantrypal/backend/internal/models"
	"github.com/pantrypal/backend/internal/service"
)

// FeedbackHandler records and lists feedback on suggested recipes.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// RegisterRoutes registers feedback routes on the given group.
// Feedback is anonymous; it is tied to a detection session, not a user.
func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/feedback", h.CreateFeedback)
	router.GET("/recipes/:id/feedback", h.ListRecipeFeedback)
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.feedback.CreateFeedback(c.Request.Context(), &models.Feedback{
		RecipeID:  req.RecipeID,
		SessionID: req.SessionID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		IsHelpful: req.IsHelpful,
	})
	if err != nil {
		log.Printf("Failed to save feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) ListRecipeFeedback(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ID"})
		return
	}

	feedback, err := h.feedback.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedback, "total": len(feedback)})
}
