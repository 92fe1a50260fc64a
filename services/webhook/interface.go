package webhook

import (
	"context"
	"time"

	"breakthrough/models"
	"breakthrough/services/calendly"
	"breakthrough/services/documents"
	"breakthrough/services/notification"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service is the single entry point external callers touch: it sequences
// verification, normalization, document provisioning and the confirmation
// email for one webhook delivery.
type Service interface {
	HandleDelivery(ctx context.Context, rawBody []byte, signatureHeader string) (*models.WebhookOutcome, error)
}

// DefaultWebhookService is the production orchestrator.
type DefaultWebhookService struct {
	SigningKey string
	Normalizer calendly.Service
	Documents  documents.Service
	Notifier   notification.Service

	// DedupClient enables the delivery dedup guard when non-nil. The guard is
	// best-effort: if Redis is unreachable the delivery is processed normally.
	DedupClient *redis.Client
	DedupTTL    time.Duration

	Logger *zap.Logger
}
