package api

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantrypal/backend/internal/middleware"
	"github.com/pantrypal/backend/internal/service"
)

// maxImageSize caps uploaded photos at 10MB.
const maxImageSize = 10 << 20

// DetectHandler handles ingredient photo uploads and detection.
type DetectHandler struct {
	detections  *service.DetectionService
	images      *service.ImageService
	rateLimiter *middleware.RateLimiter
}

// NewDetectHandler creates a detection handler. images and rateLimiter
// may be nil when photo storage or Redis are unavailable.
func NewDetectHandler(detections *service.DetectionService, images *service.ImageService, rateLimiter *middleware.RateLimiter) *DetectHandler {
	return &DetectHandler{
		detections:  detections,
		images:      images,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers detection routes on the given group.
func (h *DetectHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/detect")
	if h.rateLimiter != nil {
		group.Use(h.rateLimiter.RateLimitMiddleware())
		router.GET("/rate-limits/detection", h.RateLimitStatus)
	}
	{
		group.POST("", h.Detect)
		group.GET("/:session_id", h.GetSession)
	}
}

// RateLimitStatus reports how many detection requests the caller has
// left in the current window, without consuming any.
func (h *DetectHandler) RateLimitStatus(c *gin.Context) {
	remaining, resetTime, err := h.rateLimiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit":      h.rateLimiter.Limit(),
		"remaining":  remaining,
		"reset_time": resetTime.Unix(),
		"window":     h.rateLimiter.Window().String(),
	})
}

// Detect accepts a multipart photo upload, runs ingredient detection
// and stores the results under the request's session.
func (h *DetectHandler) Detect(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image must be 10MB or smaller"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image uploads are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// Photo storage is best-effort; detection proceeds without it.
	var imageURL string
	if h.images != nil {
		imageURL, err = h.images.UploadPhoto(c.Request.Context(), imageData, contentType)
		if err != nil {
			log.Printf("Failed to store ingredient photo: %v", err)
			imageURL = ""
		}
	}

	set, err := h.detections.DetectFromImage(c.Request.Context(), sessionID, imageURL, imageData)
	if err != nil {
		log.Printf("Detection failed for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ingredient detection failed"})
		return
	}

	c.JSON(http.StatusOK, DetectResponse{
		SessionID:   set.SessionID,
		Ingredients: set.Ingredients,
		ImageURL:    set.ImageURL,
	})
}

// GetSession returns the detected ingredients stored for a session.
func (h *DetectHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	set, err := h.detections.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if err == service.ErrSessionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	c.JSON(http.StatusOK, DetectResponse{
		SessionID:   set.SessionID,
		Ingredients: set.Ingredients,
		ImageURL:    set.ImageURL,
	})
}
