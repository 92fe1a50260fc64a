// File: breakthrough/models/webhook.go
package models

import "encoding/json"

// EventInviteeCreated is the only Calendly event kind that triggers the
// fulfillment pipeline. Everything else is acknowledged and ignored.
const EventInviteeCreated = "invitee.created"

// CalendlyWebhook is the outer envelope of a Calendly webhook delivery.
// The payload is kept raw because two incompatible shapes exist across
// Calendly API versions; the normalizer picks the right one.
type CalendlyWebhook struct {
	Event   string          `json:"event"` // e.g. "invitee.created", "invitee.canceled"
	Payload json.RawMessage `json:"payload"`
}

// NestedPayload is the older delivery shape: event, invitee and event type
// arrive as fully embedded objects.
type NestedPayload struct {
	EventType struct {
		UUID string `json:"uuid"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"event_type"`
	Event struct {
		UUID      string `json:"uuid"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Name      string `json:"name"`
	} `json:"event"`
	Invitee struct {
		UUID      string `json:"uuid"`
		Email     string `json:"email"`
		Name      string `json:"name"`
		Timezone  string `json:"timezone"`
		CreatedAt string `json:"created_at"`
		URI       string `json:"uri"`
	} `json:"invitee"`
}

// FlatPayload is the newer delivery shape: the invitee fields sit at the top
// level and the scheduled event is only referenced by URI, which has to be
// resolved with a follow-up API call.
type FlatPayload struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"created_at"`
	URI       string `json:"uri"`
	Event     string `json:"event"` // https://api.calendly.com/scheduled_events/<uuid>
}

// Outcome status values for a processed webhook delivery.
const (
	OutcomeProcessed = "processed"
	OutcomeIgnored   = "ignored"
	OutcomeDuplicate = "duplicate"
)

// WebhookOutcome is what the orchestrator hands back to the HTTP layer on
// any non-error exit.
type WebhookOutcome struct {
	Status    string            `json:"status"`
	Event     string            `json:"event"`
	Booking   *Booking          `json:"booking,omitempty"`
	Documents *BookingDocuments `json:"documents,omitempty"`
}
