package calendly

import "fmt"

// UnsupportedEventError is returned when a webhook carries an event kind the
// pipeline does not process (cancellations, reschedules, and so on). Callers
// acknowledge these deliveries instead of reporting a failure.
type UnsupportedEventError struct {
	Event string
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("unsupported event kind %q", e.Event)
}

// MalformedPayloadError is returned when no usable booking can be derived
// from the delivery, for example when no event identifier is present.
type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload: %s", e.Reason)
}
