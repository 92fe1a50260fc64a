package notification

import "fmt"

// MisconfiguredError means the sender address or API credential is absent.
// It is raised before any rendering or network activity.
type MisconfiguredError struct {
	Missing string
}

func (e *MisconfiguredError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Missing)
}

// DeliveryError wraps a failed transactional send. Provisioned documents are
// deliberately left in place when this happens; the booking needs manual
// follow-up since no durable record exists to retry from.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("confirmation email delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
