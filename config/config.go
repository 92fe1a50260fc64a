package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Calendly webhook + read API.
	CalendlyWebhookSigningKey string `mapstructure:"CALENDLY_WEBHOOK_SIGNING_KEY"`
	CalendlyAPIToken          string `mapstructure:"CALENDLY_API_TOKEN"`

	// Google Drive (OAuth2 refresh-token flow, no service account key).
	GoogleOAuthClientID     string `mapstructure:"GOOGLE_OAUTH_CLIENT_ID"`
	GoogleOAuthClientSecret string `mapstructure:"GOOGLE_OAUTH_CLIENT_SECRET"`
	GoogleOAuthRefreshToken string `mapstructure:"GOOGLE_OAUTH_REFRESH_TOKEN"`

	// Per-booking document templates.
	TemplateConsentDocID     string `mapstructure:"GOOGLE_TEMPLATE_CONSENT_DOC_ID"`
	TemplateArbitrationDocID string `mapstructure:"GOOGLE_TEMPLATE_ARBITRATION_DOC_ID"`
	TemplateIntakeDocID      string `mapstructure:"GOOGLE_TEMPLATE_INTAKE_DOC_ID"`
	TemplateFolderID         string `mapstructure:"GOOGLE_TEMPLATE_FOLDER_ID"`
	PracticeOwnerEmail       string `mapstructure:"PRACTICE_OWNER_EMAIL"`

	// Brevo transactional email.
	BrevoAPIKey    string `mapstructure:"BREVO_API_KEY"`
	BrevoFromEmail string `mapstructure:"BREVO_FROM_EMAIL"`
	BrevoFromName  string `mapstructure:"BREVO_FROM_NAME"`

	// Redis configuration (webhook delivery dedup; optional).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDedupDB  int    `mapstructure:"REDIS_DEDUP_DB"`
	DedupTTLHours int    `mapstructure:"DEDUP_TTL_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values. Every key needs at least an empty default so
	// viper.Unmarshal picks it up from the environment alone.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CALENDLY_WEBHOOK_SIGNING_KEY", "")
	viper.SetDefault("CALENDLY_API_TOKEN", "")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_OAUTH_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_TEMPLATE_CONSENT_DOC_ID", "")
	viper.SetDefault("GOOGLE_TEMPLATE_ARBITRATION_DOC_ID", "")
	viper.SetDefault("GOOGLE_TEMPLATE_INTAKE_DOC_ID", "")
	viper.SetDefault("GOOGLE_TEMPLATE_FOLDER_ID", "")
	viper.SetDefault("PRACTICE_OWNER_EMAIL", "")
	viper.SetDefault("BREVO_API_KEY", "")
	viper.SetDefault("BREVO_FROM_EMAIL", "")
	viper.SetDefault("BREVO_FROM_NAME", "Breakthrough Holistic Therapy")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DEDUP_DB", 0)
	viper.SetDefault("DEDUP_TTL_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
