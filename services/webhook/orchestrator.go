// File: breakthrough/services/webhook/orchestrator.go
package webhook

import (
	"context"
	"encoding/json"
	"time"

	"breakthrough/models"

	"go.uber.org/zap"
)

// HandleDelivery runs the fulfillment pipeline for one webhook delivery:
// verified → classified → normalized → provisioned → notified. The stages are
// strictly sequential; verification and event-kind classification are the
// only exits allowed before side effects.
func (s *DefaultWebhookService) HandleDelivery(ctx context.Context, rawBody []byte, signatureHeader string) (*models.WebhookOutcome, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.L()
	}

	// Stage: verified. Bypass is an explicit development mode, never silent.
	if s.SigningKey == "" {
		logger.Warn("CALENDLY_WEBHOOK_SIGNING_KEY not set — skipping signature verification")
	} else if !VerifySignature(rawBody, signatureHeader, s.SigningKey) {
		return nil, NewAuthenticationError("invalid webhook signature")
	}

	var hook models.CalendlyWebhook
	if err := json.Unmarshal(rawBody, &hook); err != nil {
		return nil, newPipelineError("classify", "request body is not a valid webhook envelope", err)
	}

	// Stage: classified. Anything but a new booking is acknowledged so the
	// provider does not retry it.
	if hook.Event != models.EventInviteeCreated {
		logger.Info("Ignoring event kind", zap.String("event", hook.Event))
		return &models.WebhookOutcome{Status: models.OutcomeIgnored, Event: hook.Event}, nil
	}

	// Stage: normalized.
	result, err := s.Normalizer.Normalize(ctx, hook)
	if err != nil {
		return nil, newPipelineError("normalize", "could not derive a booking from the payload", err)
	}
	booking := result.Booking
	logger.Info("Processing booking",
		zap.String("bookingId", booking.ID),
		zap.String("clientEmail", booking.ClientEmail),
		zap.String("metadata", string(result.Metadata)))

	if s.alreadyDelivered(ctx, booking.ID, logger) {
		logger.Info("Duplicate delivery suppressed", zap.String("bookingId", booking.ID))
		return &models.WebhookOutcome{Status: models.OutcomeDuplicate, Event: hook.Event, Booking: &booking}, nil
	}

	// Stage: provisioned.
	dateLabel := formatDateLabel(booking.EventDate)
	docs, err := s.Documents.CreateBookingDocs(ctx, booking.ClientName, booking.ClientEmail, dateLabel)
	if err != nil {
		s.releaseClaim(booking.ID, logger)
		return nil, newPipelineError("provision", "document provisioning failed", err)
	}
	logger.Info("Booking documents created",
		zap.String("bookingId", booking.ID),
		zap.String("consent", docs.Consent.DocID),
		zap.String("arbitration", docs.Arbitration.DocID),
		zap.String("intake", docs.Intake.DocID))

	// Stage: notified. Documents are never rolled back past this point.
	if err := s.Notifier.SendBookingConfirmation(ctx, booking, *docs); err != nil {
		s.releaseClaim(booking.ID, logger)
		return nil, newPipelineError("notify", "confirmation email failed", err)
	}
	logger.Info("Confirmation email sent", zap.String("bookingId", booking.ID), zap.String("to", booking.ClientEmail))

	return &models.WebhookOutcome{
		Status:    models.OutcomeProcessed,
		Event:     hook.Event,
		Booking:   &booking,
		Documents: docs,
	}, nil
}

// alreadyDelivered marks the booking id as seen and reports whether an
// earlier delivery already claimed it. With no dedup client configured, or
// Redis unavailable, every delivery is treated as first — the scheduling
// provider is assumed to deliver each event at most effectively once.
func (s *DefaultWebhookService) alreadyDelivered(ctx context.Context, bookingID string, logger *zap.Logger) bool {
	if s.DedupClient == nil || bookingID == "" {
		return false
	}
	ttl := s.DedupTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set, err := s.DedupClient.SetNX(opCtx, "calendly:delivery:"+bookingID, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		logger.Warn("Dedup guard unavailable, processing delivery", zap.Error(err))
		return false
	}
	return !set
}

// releaseClaim drops the dedup claim for a booking whose pipeline failed,
// so the provider's retry is not suppressed as a duplicate. Best-effort:
// the claim expires on its own TTL anyway.
func (s *DefaultWebhookService) releaseClaim(bookingID string, logger *zap.Logger) {
	if s.DedupClient == nil || bookingID == "" {
		return
	}
	opCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.DedupClient.Del(opCtx, "calendly:delivery:"+bookingID).Err(); err != nil {
		logger.Warn("Could not release dedup claim", zap.String("bookingId", bookingID), zap.Error(err))
	}
}

// formatDateLabel renders the MM/DD/YYYY date used in document titles.
func formatDateLabel(dateStr string) string {
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t = time.Now().UTC()
	}
	return t.Format("01/02/2006")
}
