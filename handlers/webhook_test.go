package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"breakthrough/handlers"
	"breakthrough/models"
	"breakthrough/routes"
	"breakthrough/services/calendly"
	"breakthrough/services/documents"
	"breakthrough/services/notification"
	"breakthrough/services/webhook"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSigningKey = "test-signing-key"

type fakeDocService struct {
	calls int
	err   error
}

func (f *fakeDocService) CreateBookingDocs(ctx context.Context, clientName, clientEmail, eventDateLabel string) (*models.BookingDocuments, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	docs := models.BookingDocuments{}
	for i, docType := range models.AllDocTypes {
		result := models.DocumentResult{
			DocID:    fmt.Sprintf("doc-%d", i+1),
			DocURL:   fmt.Sprintf("https://docs.google.com/document/d/doc-%d/edit", i+1),
			DocTitle: fmt.Sprintf("%s — %s — %s", docType, clientName, eventDateLabel),
			DocType:  docType,
		}
		if err := docs.Set(result); err != nil {
			return nil, err
		}
	}
	return &docs, nil
}

type fakeNotifier struct {
	calls         int
	lastRecipient string
	err           error
}

func (f *fakeNotifier) SendBookingConfirmation(ctx context.Context, booking models.Booking, docs models.BookingDocuments) error {
	f.calls++
	f.lastRecipient = booking.ClientEmail
	return f.err
}

func newTestRouter(signingKey string, docs documents.Service, notifier notification.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := &webhook.DefaultWebhookService{
		SigningKey: signingKey,
		Normalizer: calendly.NewDefaultCalendlyService("read-token"),
		Documents:  docs,
		Notifier:   notifier,
		Logger:     zap.NewNop(),
	}

	router := gin.New()
	routes.RegisterRoutes(router, handlers.NewWebhookHandler(svc, zap.NewNop()))
	return router
}

func nestedCreatedBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"event": "invitee.created",
		"payload": map[string]interface{}{
			"event_type": map[string]string{"uuid": "ET-1", "name": "Follow-Up Acupuncture", "slug": "follow-up"},
			"event": map[string]string{
				"uuid":       "EV-123",
				"start_time": "2024-05-01T15:00:00Z",
				"end_time":   "2024-05-01T16:00:00Z",
			},
			"invitee": map[string]string{
				"uuid":       "INV-1",
				"email":      "jane@example.com",
				"name":       "Jane Doe",
				"timezone":   "America/Los_Angeles",
				"created_at": "2024-04-20T10:00:00Z",
				"uri":        "https://api.calendly.com/scheduled_events/EV-123/invitees/INV-1",
			},
		},
	})
	require.NoError(t, err)
	return body
}

func postWebhook(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/calendly", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(handlers.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookProcessesNewBooking(t *testing.T) {
	docs := &fakeDocService{}
	notifier := &fakeNotifier{}
	router := newTestRouter(testSigningKey, docs, notifier)

	body := nestedCreatedBody(t)
	w := postWebhook(router, body, webhook.ComputeSignature(body, testSigningKey))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message   string            `json:"message"`
		BookingID string            `json:"bookingId"`
		Documents map[string]string `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Booking processed successfully", resp.Message)
	assert.Equal(t, "EV-123", resp.BookingID)
	assert.Len(t, resp.Documents, 3)
	for _, key := range []string{"consent", "arbitration", "intake"} {
		assert.NotEmpty(t, resp.Documents[key])
	}

	assert.Equal(t, 1, docs.calls)
	assert.Equal(t, 1, notifier.calls, "email dispatched exactly once")
	assert.Equal(t, "jane@example.com", notifier.lastRecipient)
}

func TestWebhookIgnoresOtherEventKinds(t *testing.T) {
	docs := &fakeDocService{}
	notifier := &fakeNotifier{}
	router := newTestRouter(testSigningKey, docs, notifier)

	body := []byte(`{"event":"invitee.canceled","payload":{}}`)
	w := postWebhook(router, body, webhook.ComputeSignature(body, testSigningKey))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Event ignored", resp["message"])
	assert.Equal(t, "invitee.canceled", resp["event"])

	assert.Equal(t, 0, docs.calls, "no documents may be created")
	assert.Equal(t, 0, notifier.calls, "no email may be sent")
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	docs := &fakeDocService{}
	notifier := &fakeNotifier{}
	router := newTestRouter(testSigningKey, docs, notifier)

	w := postWebhook(router, nestedCreatedBody(t), "")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid signature", resp["error"])

	assert.Equal(t, 0, docs.calls, "nothing downstream may run")
	assert.Equal(t, 0, notifier.calls)
}

func TestWebhookSurfacesMissingTemplateAsServerError(t *testing.T) {
	docs := &fakeDocService{err: &documents.MissingTemplateError{Kind: models.DocTypeArbitration}}
	notifier := &fakeNotifier{}
	router := newTestRouter(testSigningKey, docs, notifier)

	body := nestedCreatedBody(t)
	w := postWebhook(router, body, webhook.ComputeSignature(body, testSigningKey))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["error"])
	assert.NotEmpty(t, resp["message"])

	assert.Equal(t, 0, notifier.calls, "no email without a complete document set")
}

func TestWebhookNotifierFailureLeavesDocumentsInPlace(t *testing.T) {
	docs := &fakeDocService{}
	notifier := &fakeNotifier{err: &notification.DeliveryError{Err: errors.New("brevo 503")}}
	router := newTestRouter(testSigningKey, docs, notifier)

	body := nestedCreatedBody(t)
	w := postWebhook(router, body, webhook.ComputeSignature(body, testSigningKey))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, docs.calls, "documents are provisioned and not rolled back")
	assert.Equal(t, 1, notifier.calls)
}

func TestWebhookRejectsNonPOST(t *testing.T) {
	router := newTestRouter(testSigningKey, &fakeDocService{}, &fakeNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/webhooks/calendly", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Method not allowed", resp["error"])
}

func TestWebhookUnsafeModeSkipsVerification(t *testing.T) {
	// No signing key configured: development-only bypass, logged as a warning.
	docs := &fakeDocService{}
	notifier := &fakeNotifier{}
	router := newTestRouter("", docs, notifier)

	w := postWebhook(router, nestedCreatedBody(t), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, docs.calls)
	assert.Equal(t, 1, notifier.calls)
}
