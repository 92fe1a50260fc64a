package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A deployment without a config.yaml must still see every credential from
// the environment; a key that loads empty silently disables signature
// verification or document provisioning.
func TestLoadConfigReadsEnvironmentWithoutConfigFile(t *testing.T) {
	t.Setenv("CALENDLY_WEBHOOK_SIGNING_KEY", "super-secret")
	t.Setenv("CALENDLY_API_TOKEN", "read-token")
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_OAUTH_REFRESH_TOKEN", "refresh-token")
	t.Setenv("GOOGLE_TEMPLATE_CONSENT_DOC_ID", "tpl-consent")
	t.Setenv("GOOGLE_TEMPLATE_ARBITRATION_DOC_ID", "tpl-arbitration")
	t.Setenv("GOOGLE_TEMPLATE_INTAKE_DOC_ID", "tpl-intake")
	t.Setenv("GOOGLE_TEMPLATE_FOLDER_ID", "folder-1")
	t.Setenv("PRACTICE_OWNER_EMAIL", "owner@practice.example")
	t.Setenv("BREVO_API_KEY", "brevo-key")
	t.Setenv("BREVO_FROM_EMAIL", "care@practice.example")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DEDUP_TTL_HOURS", "48")

	LoadConfig()

	assert.Equal(t, "super-secret", AppConfig.CalendlyWebhookSigningKey)
	assert.Equal(t, "read-token", AppConfig.CalendlyAPIToken)
	assert.Equal(t, "client-id", AppConfig.GoogleOAuthClientID)
	assert.Equal(t, "client-secret", AppConfig.GoogleOAuthClientSecret)
	assert.Equal(t, "refresh-token", AppConfig.GoogleOAuthRefreshToken)
	assert.Equal(t, "tpl-consent", AppConfig.TemplateConsentDocID)
	assert.Equal(t, "tpl-arbitration", AppConfig.TemplateArbitrationDocID)
	assert.Equal(t, "tpl-intake", AppConfig.TemplateIntakeDocID)
	assert.Equal(t, "folder-1", AppConfig.TemplateFolderID)
	assert.Equal(t, "owner@practice.example", AppConfig.PracticeOwnerEmail)
	assert.Equal(t, "brevo-key", AppConfig.BrevoAPIKey)
	assert.Equal(t, "care@practice.example", AppConfig.BrevoFromEmail)
	assert.Equal(t, "localhost:6379", AppConfig.RedisAddr)
	assert.Equal(t, 48, AppConfig.DedupTTLHours)
}

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.Equal(t, "Breakthrough Holistic Therapy", AppConfig.BrevoFromName)
	assert.Equal(t, 24, AppConfig.DedupTTLHours)
	assert.False(t, IsProduction())
}
