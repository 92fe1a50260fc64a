package models

// Booking is the canonical appointment record produced from a Calendly
// webhook delivery. It is constructed once by the normalizer and passed by
// value through the rest of the pipeline; nothing mutates it afterwards.
type Booking struct {
	ID                 string `json:"id"`                 // Provider event identifier
	ClientName         string `json:"clientName"`         // Invitee display name
	ClientEmail        string `json:"clientEmail"`        // Invitee email address
	EventType          string `json:"eventType"`          // Human label, e.g. "Follow-Up Acupuncture"
	EventDate          string `json:"eventDate"`          // ISO-8601 start time
	EventTime          string `json:"eventTime"`          // Same instant, kept separate for display
	Timezone           string `json:"timezone"`           // IANA zone name, e.g. "America/Los_Angeles"
	CalendlyEventURI   string `json:"calendlyEventUri"`   // Opaque provider URI, never parsed further
	CalendlyInviteeURI string `json:"calendlyInviteeUri"` // Opaque provider URI, used for dedup/audit
	CreatedAt          string `json:"createdAt"`
}

// MetadataSource reports how a booking's event metadata was obtained.
type MetadataSource string

const (
	// MetadataFull means the event label and times came straight from the
	// payload or from a successful Calendly lookup.
	MetadataFull MetadataSource = "full"
	// MetadataFallback means a lookup failed and generic values were
	// substituted so the pipeline could continue.
	MetadataFallback MetadataSource = "fallback"
)
