package documents

import (
	"context"
	"fmt"

	"breakthrough/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Service provisions the per-booking legal and intake documents.
type Service interface {
	CreateBookingDocs(ctx context.Context, clientName, clientEmail, eventDateLabel string) (*models.BookingDocuments, error)
}

// TemplateConfig names the master documents copied per booking and the
// sharing endpoints applied to each copy.
type TemplateConfig struct {
	ConsentDocID     string
	ArbitrationDocID string
	IntakeDocID      string
	FolderID         string // optional destination folder for the copies
	OwnerEmail       string // practice owner, granted writer if set
}

// DriveDocumentService implements Service against the Google Drive API.
type DriveDocumentService struct {
	Drive  *drive.Service
	Config TemplateConfig
}

// NewDriveDocumentService creates a Drive-backed document service using the
// OAuth 2.0 refresh-token flow, avoiding a service account key.
func NewDriveDocumentService(ctx context.Context, clientID, clientSecret, refreshToken string, cfg TemplateConfig) (*DriveDocumentService, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{drive.DriveScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	srv, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}
	return &DriveDocumentService{Drive: srv, Config: cfg}, nil
}
