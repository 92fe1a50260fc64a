package calendly

import (
	"context"
	"encoding/json"
	"path"
	"strings"
	"time"

	"breakthrough/models"
	"breakthrough/utils"

	"go.uber.org/zap"
)

// fallbackEventType labels a booking whose metadata lookup failed. Document
// and email delivery outrank a perfect label, so the pipeline continues.
const fallbackEventType = "Appointment"

// Normalize converts a webhook delivery into a canonical booking. Two payload
// shapes exist across Calendly API versions; the presence of a nested
// event_type object is the discriminator.
func (s *DefaultCalendlyService) Normalize(ctx context.Context, hook models.CalendlyWebhook) (*NormalizeResult, error) {
	if hook.Event != models.EventInviteeCreated {
		return nil, &UnsupportedEventError{Event: hook.Event}
	}
	if len(hook.Payload) == 0 {
		return nil, &MalformedPayloadError{Reason: "empty payload"}
	}

	var probe struct {
		EventType json.RawMessage `json:"event_type"`
	}
	if err := json.Unmarshal(hook.Payload, &probe); err != nil {
		return nil, &MalformedPayloadError{Reason: "payload is not a JSON object"}
	}

	if isJSONObject(probe.EventType) {
		return s.normalizeNested(hook.Payload)
	}
	return s.normalizeFlat(ctx, hook.Payload)
}

// normalizeNested handles the older shape with embedded event, invitee and
// event-type objects. No external lookups are needed.
func (s *DefaultCalendlyService) normalizeNested(payload json.RawMessage) (*NormalizeResult, error) {
	var p models.NestedPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, &MalformedPayloadError{Reason: "nested payload did not decode"}
	}

	if p.Event.UUID == "" {
		return nil, &MalformedPayloadError{Reason: "no event identifier in payload"}
	}
	if p.Invitee.Email == "" {
		return nil, &MalformedPayloadError{Reason: "invitee email is empty"}
	}
	if _, err := time.Parse(time.RFC3339, p.Event.StartTime); err != nil {
		return nil, &MalformedPayloadError{Reason: "event start time is not a valid instant"}
	}

	booking := models.Booking{
		ID:                 p.Event.UUID,
		ClientName:         p.Invitee.Name,
		ClientEmail:        p.Invitee.Email,
		EventType:          p.EventType.Name,
		EventDate:          p.Event.StartTime,
		EventTime:          p.Event.StartTime,
		Timezone:           p.Invitee.Timezone,
		CalendlyEventURI:   p.Event.UUID,
		CalendlyInviteeURI: p.Invitee.URI,
		CreatedAt:          p.Invitee.CreatedAt,
	}
	return &NormalizeResult{Booking: booking, Metadata: models.MetadataFull}, nil
}

// normalizeFlat handles the newer shape where the scheduled event is only a
// reference URI. Metadata enrichment is best-effort: a failed lookup
// substitutes a generic label and the current time rather than aborting.
func (s *DefaultCalendlyService) normalizeFlat(ctx context.Context, payload json.RawMessage) (*NormalizeResult, error) {
	logger := utils.GetLogger()

	var p models.FlatPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, &MalformedPayloadError{Reason: "flat payload did not decode"}
	}

	id := lastPathSegment(p.URI)
	if id == "" {
		return nil, &MalformedPayloadError{Reason: "no invitee identifier in payload"}
	}
	if p.Email == "" {
		return nil, &MalformedPayloadError{Reason: "invitee email is empty"}
	}

	meta := models.MetadataFull
	label := ""
	start := ""

	if p.Event != "" {
		ev, err := s.fetchScheduledEvent(ctx, p.Event)
		if err != nil {
			logger.Warn("Scheduled event lookup failed, using fallback metadata",
				zap.String("eventUri", p.Event), zap.Error(err))
		} else {
			label = ev.Name
			start = ev.StartTime
			if ev.EventType != "" {
				name, err := s.fetchEventTypeName(ctx, ev.EventType)
				if err != nil {
					logger.Warn("Event type lookup failed, keeping event name",
						zap.String("eventTypeUri", ev.EventType), zap.Error(err))
				} else if name != "" {
					label = name
				}
			}
		}
	}

	if label == "" {
		label = fallbackEventType
		meta = models.MetadataFallback
	}
	if _, err := time.Parse(time.RFC3339, start); err != nil {
		start = time.Now().UTC().Format(time.RFC3339)
		meta = models.MetadataFallback
	}

	booking := models.Booking{
		ID:                 id,
		ClientName:         p.Name,
		ClientEmail:        p.Email,
		EventType:          label,
		EventDate:          start,
		EventTime:          start,
		Timezone:           p.Timezone,
		CalendlyEventURI:   p.Event,
		CalendlyInviteeURI: p.URI,
		CreatedAt:          p.CreatedAt,
	}
	return &NormalizeResult{Booking: booking, Metadata: meta}, nil
}

// isJSONObject reports whether raw holds a JSON object (not null, a string,
// or absent).
func isJSONObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}

// lastPathSegment extracts the trailing path segment of a resource URI.
func lastPathSegment(uri string) string {
	trimmed := strings.TrimSuffix(uri, "/")
	if trimmed == "" {
		return ""
	}
	seg := path.Base(trimmed)
	if seg == "." || seg == "/" || strings.Contains(seg, ":") {
		return ""
	}
	return seg
}
