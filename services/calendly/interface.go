package calendly

import (
	"context"
	"net/http"
	"time"

	"breakthrough/models"
)

// NormalizeResult carries the canonical booking plus a marker for whether its
// event metadata is authoritative or a local fallback after a failed lookup.
type NormalizeResult struct {
	Booking  models.Booking
	Metadata models.MetadataSource
}

// Service converts a Calendly webhook delivery into a canonical booking,
// resolving URI-reference payloads against the Calendly read API.
type Service interface {
	Normalize(ctx context.Context, hook models.CalendlyWebhook) (*NormalizeResult, error)
}

// DefaultCalendlyService is the production implementation.
type DefaultCalendlyService struct {
	APIToken string
	Client   *http.Client
}

// NewDefaultCalendlyService builds a service with a bounded HTTP client for
// the best-effort metadata lookups.
func NewDefaultCalendlyService(apiToken string) *DefaultCalendlyService {
	return &DefaultCalendlyService{
		APIToken: apiToken,
		Client:   &http.Client{Timeout: 8 * time.Second},
	}
}
