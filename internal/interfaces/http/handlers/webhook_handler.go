package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"refgate.backend/internal/usecases"
	"refgate.backend/pkg/logger"
)

type completionService interface {
	ProcessWebhook(ctx context.Context, eventType string, data json.RawMessage)
}

// WebhookHandler handles deliveries from the external conversion source
type WebhookHandler struct {
	completionUsecase completionService
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(completionUsecase *usecases.CompletionUsecase) *WebhookHandler {
	return &WebhookHandler{completionUsecase: completionUsecase}
}

// HandleReferralWebhook processes a completion-event delivery. It always
// acknowledges with 200 regardless of internal outcome: the source
// retries on non-success and unbounded retries are worse than a logged
// failure.
// POST /api/v1/webhooks/referral
func (h *WebhookHandler) HandleReferralWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Warn(c.Request.Context(), "Webhook body read failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var envelope struct {
		EventType string `json:"eventType"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		logger.Warn(c.Request.Context(), "Webhook payload is not valid JSON", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	h.completionUsecase.ProcessWebhook(c.Request.Context(), envelope.EventType, body)

	c.JSON(http.StatusOK, gin.H{"received": true})
}
