package notification

import (
	"context"
	"fmt"
	"time"

	"breakthrough/models"

	brevo "github.com/getbrevo/brevo-go/lib"
)

// Service sends the single canonical confirmation email for a booking.
type Service interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking, docs models.BookingDocuments) error
}

// BrevoNotificationService is the production implementation, dispatching
// through Brevo's transactional email API.
type BrevoNotificationService struct {
	client    *brevo.APIClient
	apiKey    string
	fromEmail string
	fromName  string
}

// NewBrevoNotificationService builds the notifier. Missing credentials are
// tolerated here and reported on send, so a development process can boot
// without a Brevo account.
func NewBrevoNotificationService(apiKey, fromEmail, fromName string) *BrevoNotificationService {
	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)
	return &BrevoNotificationService{
		client:    brevo.NewAPIClient(cfg),
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendBookingConfirmation renders the HTML and plain-text bodies and sends
// one message to the client, reply-to set to the practice sender.
func (s *BrevoNotificationService) SendBookingConfirmation(ctx context.Context, booking models.Booking, docs models.BookingDocuments) error {
	if s.apiKey == "" {
		return &MisconfiguredError{Missing: "BREVO_API_KEY"}
	}
	if s.fromEmail == "" {
		return &MisconfiguredError{Missing: "BREVO_FROM_EMAIL"}
	}

	htmlBody, err := buildEmailHTML(booking, docs)
	if err != nil {
		return fmt.Errorf("render html body: %w", err)
	}
	textBody, err := buildEmailText(booking, docs)
	if err != nil {
		return fmt.Errorf("render text body: %w", err)
	}

	subject := fmt.Sprintf("Booking Confirmed — %s on %s", booking.EventType, formatDate(booking.EventDate, booking.Timezone))

	email := brevo.SendSmtpEmail{
		Subject:     subject,
		HtmlContent: htmlBody,
		TextContent: textBody,
		Sender:      &brevo.SendSmtpEmailSender{Name: s.fromName, Email: s.fromEmail},
		To:          []brevo.SendSmtpEmailTo{{Email: booking.ClientEmail, Name: booking.ClientName}},
		ReplyTo:     &brevo.SendSmtpEmailReplyTo{Email: s.fromEmail, Name: s.fromName},
	}

	sendCtx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()
	if _, _, err := s.client.TransactionalEmailsApi.SendTransacEmail(sendCtx, email); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
