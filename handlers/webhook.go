package handlers

import (
	"errors"
	"io"
	"net/http"

	"breakthrough/models"
	"breakthrough/services/webhook"
	"breakthrough/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SignatureHeader is the request header Calendly signs deliveries with.
const SignatureHeader = "Calendly-Webhook-Signature"

// WebhookHandler exposes the booking-fulfillment pipeline over HTTP.
type WebhookHandler struct {
	Service webhook.Service
	Logger  *zap.Logger
}

func NewWebhookHandler(svc webhook.Service, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Service: svc, Logger: logger}
}

// HandleCalendlyWebhook receives one webhook delivery and maps the pipeline
// outcome onto HTTP. Failures past signature verification are surfaced as a
// generic server error; the logs keep the specifics.
func (h *WebhookHandler) HandleCalendlyWebhook(c *gin.Context) {
	deliveryID := uuid.New().String()
	logger := h.Logger.With(zap.String("deliveryId", deliveryID))

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Error("Failed to read webhook body", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError,
			"Internal server error", "An unexpected error occurred while processing the booking")
		return
	}

	outcome, err := h.Service.HandleDelivery(c.Request.Context(), rawBody, c.GetHeader(SignatureHeader))
	if err != nil {
		var authErr *webhook.AuthenticationError
		if errors.As(err, &authErr) {
			logger.Error("Invalid webhook signature")
			utils.JSONError(c, http.StatusUnauthorized, "Invalid signature", "")
			return
		}

		logger.Error("Error processing Calendly webhook", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError,
			"Internal server error", "An unexpected error occurred while processing the booking")
		return
	}

	switch outcome.Status {
	case models.OutcomeIgnored:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored", "event": outcome.Event})
	case models.OutcomeDuplicate:
		c.JSON(http.StatusOK, gin.H{"message": "Duplicate delivery ignored", "event": outcome.Event})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":   "Booking processed successfully",
			"bookingId": outcome.Booking.ID,
			"documents": gin.H{
				"consent":     outcome.Documents.Consent.DocURL,
				"arbitration": outcome.Documents.Arbitration.DocURL,
				"intake":      outcome.Documents.Intake.DocURL,
			},
		})
	}
}
