package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelperfect/pixelperfect/backend/go-services/internal/content"
	"github.com/pixelperfect/pixelperfect/backend/go-services/pkg/logger"
	"github.com/pixelperfect/pixelperfect/backend/go-services/pkg/metrics"
)

// ContentHandler serves the curated content collections.
type ContentHandler struct {
	svc *content.Service
}

func NewContentHandler(svc *content.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func (h *ContentHandler) Register(r *gin.Engine) {
	r.GET("/api/clients-responses", h.ClientsResponses)
	r.GET("/api/success-stories", h.SuccessStories)
	r.GET("/api/frequently-asked-questions", h.FrequentlyAskedQuestions)
}

// ClientsResponses returns up to 3 client testimonials.
func (h *ContentHandler) ClientsResponses(c *gin.Context) {
	docs, err := h.svc.Testimonials(c.Request.Context())
	if err != nil {
		logger.Errorf("error fetching testimonials: %v", err)
		metrics.ContentRequests.WithLabelValues("testimonials", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An error occurred while fetching testimonials",
			"error":   err.Error(),
		})
		return
	}
	metrics.ContentRequests.WithLabelValues("testimonials", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
}

// SuccessStories returns up to 3 success stories.
func (h *ContentHandler) SuccessStories(c *gin.Context) {
	docs, err := h.svc.SuccessStories(c.Request.Context())
	if err != nil {
		logger.Errorf("error fetching success stories: %v", err)
		metrics.ContentRequests.WithLabelValues("success_stories", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An error occurred while fetching success stories",
			"error":   err.Error(),
		})
		return
	}
	metrics.ContentRequests.WithLabelValues("success_stories", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
}

// FrequentlyAskedQuestions returns up to 4 FAQ entries.
func (h *ContentHandler) FrequentlyAskedQuestions(c *gin.Context) {
	docs, err := h.svc.FAQ(c.Request.Context())
	if err != nil {
		logger.Errorf("error fetching FAQs: %v", err)
		metrics.ContentRequests.WithLabelValues("faq", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An error occurred while fetching FAQs",
			"error":   err.Error(),
		})
		return
	}
	metrics.ContentRequests.WithLabelValues("faq", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
}
