// File: breakthrough/services/documents/provision.go
package documents

import (
	"context"
	"fmt"

	"breakthrough/models"

	"google.golang.org/api/drive/v3"
)

// docKind pairs a document type with its display label and configured
// template identifier.
type docKind struct {
	Type  models.DocType
	Label string
}

var docKinds = []docKind{
	{Type: models.DocTypeConsent, Label: "Informed Consent"},
	{Type: models.DocTypeArbitration, Label: "Agreement to Arbitration"},
	{Type: models.DocTypeIntake, Label: "Medical History Intake"},
}

func (s *DriveDocumentService) templateFor(t models.DocType) string {
	switch t {
	case models.DocTypeConsent:
		return s.Config.ConsentDocID
	case models.DocTypeArbitration:
		return s.Config.ArbitrationDocID
	case models.DocTypeIntake:
		return s.Config.IntakeDocID
	}
	return ""
}

// CreateBookingDocs copies all three templates for a client, renames the
// copies, and applies the two-party sharing policy. All template identifiers
// are validated up front so a misconfiguration never produces a partial set
// on purpose; a mid-flight Drive failure can still leave earlier copies
// behind, and those are not cleaned up.
func (s *DriveDocumentService) CreateBookingDocs(ctx context.Context, clientName, clientEmail, eventDateLabel string) (*models.BookingDocuments, error) {
	for _, kind := range docKinds {
		if s.templateFor(kind.Type) == "" {
			return nil, &MissingTemplateError{Kind: kind.Type}
		}
	}

	var docs models.BookingDocuments
	for _, kind := range docKinds {
		title := fmt.Sprintf("%s — %s — %s", kind.Label, clientName, eventDateLabel)

		fileID, viewLink, err := s.copyTemplate(ctx, s.templateFor(kind.Type), title)
		if err != nil {
			return nil, &ProvisioningError{Kind: kind.Type, Op: "copy", Err: err}
		}

		if err := s.applySharingPolicy(ctx, fileID, clientEmail); err != nil {
			return nil, &ProvisioningError{Kind: kind.Type, Op: "permissions", Err: err}
		}

		result := models.DocumentResult{
			DocID:    fileID,
			DocURL:   viewLink,
			DocTitle: title,
			DocType:  kind.Type,
		}
		if err := docs.Set(result); err != nil {
			return nil, err
		}
	}

	return &docs, nil
}

// copyTemplate duplicates a template document under the given title,
// optionally into the configured destination folder.
func (s *DriveDocumentService) copyTemplate(ctx context.Context, templateID, title string) (fileID, viewLink string, err error) {
	copyReq := &drive.File{Name: title}
	if s.Config.FolderID != "" {
		copyReq.Parents = []string{s.Config.FolderID}
	}

	created, err := s.Drive.Files.Copy(templateID, copyReq).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", err
	}
	return created.Id, created.WebViewLink, nil
}

// applySharingPolicy grants writer access to the client and the practice
// owner, then locks the copy down so editors cannot re-share it or copy it
// onward. Drive's own notification email is suppressed; the confirmation
// email is the single message the client receives.
func (s *DriveDocumentService) applySharingPolicy(ctx context.Context, fileID, clientEmail string) error {
	_, err := s.Drive.Permissions.Create(fileID, &drive.Permission{
		Role:         "writer",
		Type:         "user",
		EmailAddress: clientEmail,
	}).SendNotificationEmail(false).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("grant client access: %w", err)
	}

	if s.Config.OwnerEmail != "" && s.Config.OwnerEmail != clientEmail {
		_, err = s.Drive.Permissions.Create(fileID, &drive.Permission{
			Role:         "writer",
			Type:         "user",
			EmailAddress: s.Config.OwnerEmail,
		}).SendNotificationEmail(false).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("grant owner access: %w", err)
		}
	}

	// WritersCanShare is a false-valued field, so it must be force-sent or
	// the API client drops it from the patch.
	_, err = s.Drive.Files.Update(fileID, &drive.File{
		WritersCanShare:              false,
		CopyRequiresWriterPermission: true,
		ForceSendFields:              []string{"WritersCanShare", "CopyRequiresWriterPermission"},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("restrict sharing: %w", err)
	}
	return nil
}
