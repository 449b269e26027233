package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelperfect/pixelperfect/backend/go-services/internal/messages"
	"github.com/pixelperfect/pixelperfect/backend/go-services/pkg/logger"
	"github.com/pixelperfect/pixelperfect/backend/go-services/pkg/metrics"
)

// MessageHandler handles contact form submissions.
type MessageHandler struct {
	svc *messages.Service
}

func NewMessageHandler(svc *messages.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) Register(r *gin.Engine) {
	r.POST("/api/message", h.Submit)
}

// Submit accepts a JSON or form-encoded contact submission, validates and
// normalizes it, and persists it to the messages collection.
func (h *MessageHandler) Submit(c *gin.Context) {
	var draft messages.Draft
	if err := c.ShouldBind(&draft); err != nil {
		// an unreadable body carries no fields, so the missing-fields
		// contract applies
		metrics.Submissions.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Required fields are missing",
		})
		return
	}

	id, err := h.svc.Submit(c.Request.Context(), draft)
	if errors.Is(err, messages.ErrMissingFields) {
		metrics.Submissions.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Required fields are missing",
		})
		return
	}
	if err != nil {
		logger.Errorf("error saving message: %v", err)
		metrics.Submissions.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An error occurred while processing your request",
			"error":   err.Error(),
		})
		return
	}

	metrics.Submissions.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Your message has been sent successfully!",
		"id":      id,
	})
}
