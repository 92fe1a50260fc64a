package notification

import (
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"breakthrough/models"
)

// emailData is the view model shared by the HTML and plain-text bodies.
// Both renderings must carry the same three document URLs and the same
// formatted date and time.
type emailData struct {
	ClientName     string
	EventType      string
	Date           string
	Time           string
	ConsentURL     string
	ArbitrationURL string
	IntakeURL      string
}

func newEmailData(booking models.Booking, docs models.BookingDocuments) emailData {
	return emailData{
		ClientName:     booking.ClientName,
		EventType:      booking.EventType,
		Date:           formatDate(booking.EventDate, booking.Timezone),
		Time:           formatTime(booking.EventDate, booking.Timezone),
		ConsentURL:     docs.Consent.DocURL,
		ArbitrationURL: docs.Arbitration.DocURL,
		IntakeURL:      docs.Intake.DocURL,
	}
}

// formatDate renders a long-form date (weekday, month, day, year) in the
// booking's stated timezone, never the server's local zone.
func formatDate(dateStr, timezone string) string {
	return inZone(dateStr, timezone).Format("Monday, January 2, 2006")
}

// formatTime renders a 12-hour clock time with the zone abbreviation.
func formatTime(dateStr, timezone string) string {
	return inZone(dateStr, timezone).Format("3:04 PM MST")
}

func inZone(dateStr, timezone string) time.Time {
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t = time.Now().UTC()
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc)
}

func buildEmailHTML(booking models.Booking, docs models.BookingDocuments) (string, error) {
	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, newEmailData(booking, docs)); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

func buildEmailText(booking models.Booking, docs models.BookingDocuments) (string, error) {
	var sb strings.Builder
	if err := textTemplate.Execute(&sb, newEmailData(booking, docs)); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

var htmlTemplate = template.Must(template.New("confirmation").Parse(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0; padding:0; background-color:#faf9f6; font-family:'Georgia','Times New Roman',serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#faf9f6; padding:40px 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff; border-radius:12px; overflow:hidden; box-shadow:0 2px 8px rgba(0,0,0,0.06);">

          <!-- Header -->
          <tr>
            <td style="background-color:#4a3728; padding:32px 40px; text-align:center;">
              <h1 style="color:#ffffff; margin:0; font-size:24px; font-weight:normal; letter-spacing:1px;">
                Breakthrough Holistic Therapy
              </h1>
            </td>
          </tr>

          <!-- Body -->
          <tr>
            <td style="padding:40px;">
              <h2 style="color:#4a3728; margin:0 0 8px 0; font-size:22px;">
                Booking Confirmed
              </h2>
              <p style="color:#6b5c4d; font-size:16px; line-height:1.6; margin:0 0 24px 0;">
                Thank you for booking with us, {{.ClientName}}. Below are the details of your upcoming appointment.
              </p>

              <!-- Appointment Details -->
              <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#f5f0eb; border-radius:8px; margin-bottom:32px;">
                <tr>
                  <td style="padding:24px;">
                    <p style="color:#4a3728; font-size:14px; margin:0 0 12px 0; text-transform:uppercase; letter-spacing:1px; font-weight:bold;">
                      Appointment Details
                    </p>
                    <table cellpadding="0" cellspacing="0">
                      <tr>
                        <td style="color:#6b5c4d; font-size:15px; padding:4px 16px 4px 0; font-weight:bold;">Service:</td>
                        <td style="color:#4a3728; font-size:15px; padding:4px 0;">{{.EventType}}</td>
                      </tr>
                      <tr>
                        <td style="color:#6b5c4d; font-size:15px; padding:4px 16px 4px 0; font-weight:bold;">Date:</td>
                        <td style="color:#4a3728; font-size:15px; padding:4px 0;">{{.Date}}</td>
                      </tr>
                      <tr>
                        <td style="color:#6b5c4d; font-size:15px; padding:4px 16px 4px 0; font-weight:bold;">Time:</td>
                        <td style="color:#4a3728; font-size:15px; padding:4px 0;">{{.Time}}</td>
                      </tr>
                    </table>
                  </td>
                </tr>
              </table>

              <!-- Documents Section -->
              <h3 style="color:#4a3728; margin:0 0 8px 0; font-size:18px;">
                Required Documents
              </h3>
              <p style="color:#6b5c4d; font-size:15px; line-height:1.6; margin:0 0 20px 0;">
                Please review and sign the following documents before your appointment. These documents are private and shared only between you and your practitioner.
              </p>

              <!-- Doc 1: Consent -->
              <table width="100%" cellpadding="0" cellspacing="0" style="margin-bottom:12px;">
                <tr>
                  <td style="background-color:#f5f0eb; border-radius:8px; padding:16px 20px;">
                    <table width="100%" cellpadding="0" cellspacing="0">
                      <tr>
                        <td>
                          <p style="color:#4a3728; font-size:15px; font-weight:bold; margin:0 0 4px 0;">
                            1. Informed Consent
                          </p>
                          <p style="color:#6b5c4d; font-size:13px; margin:0;">
                            Review and consent to treatment
                          </p>
                        </td>
                        <td width="140" align="right" valign="middle">
                          <a href="{{.ConsentURL}}" style="display:inline-block; background-color:#4a3728; color:#ffffff; text-decoration:none; padding:10px 20px; border-radius:6px; font-size:14px;">
                            Open Document
                          </a>
                        </td>
                      </tr>
                    </table>
                  </td>
                </tr>
              </table>

              <!-- Doc 2: Arbitration -->
              <table width="100%" cellpadding="0" cellspacing="0" style="margin-bottom:12px;">
                <tr>
                  <td style="background-color:#f5f0eb; border-radius:8px; padding:16px 20px;">
                    <table width="100%" cellpadding="0" cellspacing="0">
                      <tr>
                        <td>
                          <p style="color:#4a3728; font-size:15px; font-weight:bold; margin:0 0 4px 0;">
                            2. Agreement to Arbitration
                          </p>
                          <p style="color:#6b5c4d; font-size:13px; margin:0;">
                            Review and agree to arbitration terms
                          </p>
                        </td>
                        <td width="140" align="right" valign="middle">
                          <a href="{{.ArbitrationURL}}" style="display:inline-block; background-color:#4a3728; color:#ffffff; text-decoration:none; padding:10px 20px; border-radius:6px; font-size:14px;">
                            Open Document
                          </a>
                        </td>
                      </tr>
                    </table>
                  </td>
                </tr>
              </table>

              <!-- Doc 3: Intake -->
              <table width="100%" cellpadding="0" cellspacing="0" style="margin-bottom:32px;">
                <tr>
                  <td style="background-color:#f5f0eb; border-radius:8px; padding:16px 20px;">
                    <table width="100%" cellpadding="0" cellspacing="0">
                      <tr>
                        <td>
                          <p style="color:#4a3728; font-size:15px; font-weight:bold; margin:0 0 4px 0;">
                            3. Medical History Intake
                          </p>
                          <p style="color:#6b5c4d; font-size:13px; margin:0;">
                            Provide your health history and details
                          </p>
                        </td>
                        <td width="140" align="right" valign="middle">
                          <a href="{{.IntakeURL}}" style="display:inline-block; background-color:#4a3728; color:#ffffff; text-decoration:none; padding:10px 20px; border-radius:6px; font-size:14px;">
                            Open Document
                          </a>
                        </td>
                      </tr>
                    </table>
                  </td>
                </tr>
              </table>

              <hr style="border:none; border-top:1px solid #e8e0d8; margin:0 0 24px 0;" />

              <p style="color:#6b5c4d; font-size:14px; line-height:1.6; margin:0;">
                If you have any questions, feel free to reply to this email. We look forward to seeing you!
              </p>
            </td>
          </tr>

          <!-- Footer -->
          <tr>
            <td style="background-color:#f5f0eb; padding:24px 40px; text-align:center;">
              <p style="color:#8b7d6e; font-size:13px; margin:0;">
                Breakthrough Holistic Therapy<br />
                Traditional Chinese Medicine
              </p>
              <p style="color:#a89b8c; font-size:12px; margin:8px 0 0 0;">
                This email contains confidential health information. If you received this in error, please delete it immediately.
              </p>
            </td>
          </tr>

        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

var textTemplate = texttemplate.Must(texttemplate.New("confirmation-text").Parse(`
BREAKTHROUGH HOLISTIC THERAPY
Booking Confirmed

Thank you for booking with us, {{.ClientName}}.

APPOINTMENT DETAILS
-------------------
Service: {{.EventType}}
Date: {{.Date}}
Time: {{.Time}}

REQUIRED DOCUMENTS
------------------
Please review and sign the following documents before your appointment.
These documents are private and shared only between you and your practitioner.

1. Informed Consent
   {{.ConsentURL}}

2. Agreement to Arbitration
   {{.ArbitrationURL}}

3. Medical History Intake
   {{.IntakeURL}}

If you have any questions, feel free to reply to this email.
We look forward to seeing you!

---
Breakthrough Holistic Therapy
Traditional Chinese Medicine

This email contains confidential health information.
If you received this in error, please delete it immediately.
`))
