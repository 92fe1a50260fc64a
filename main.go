// File: breakthrough/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breakthrough/config"
	"breakthrough/handlers"
	"breakthrough/middleware"
	"breakthrough/routes"
	"breakthrough/services/calendly"
	"breakthrough/services/documents"
	"breakthrough/services/notification"
	"breakthrough/services/webhook"
	"breakthrough/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.CalendlyWebhookSigningKey == "" {
		logger.Warn("CALENDLY_WEBHOOK_SIGNING_KEY not set — webhook signature verification is disabled")
	}

	utils.InitDedup()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	calendlySvc := calendly.NewDefaultCalendlyService(config.AppConfig.CalendlyAPIToken)

	docSvc, err := documents.NewDriveDocumentService(
		context.Background(),
		config.AppConfig.GoogleOAuthClientID,
		config.AppConfig.GoogleOAuthClientSecret,
		config.AppConfig.GoogleOAuthRefreshToken,
		documents.TemplateConfig{
			ConsentDocID:     config.AppConfig.TemplateConsentDocID,
			ArbitrationDocID: config.AppConfig.TemplateArbitrationDocID,
			IntakeDocID:      config.AppConfig.TemplateIntakeDocID,
			FolderID:         config.AppConfig.TemplateFolderID,
			OwnerEmail:       config.AppConfig.PracticeOwnerEmail,
		},
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize drive document service: %v", err)
	}

	notifySvc := notification.NewBrevoNotificationService(
		config.AppConfig.BrevoAPIKey,
		config.AppConfig.BrevoFromEmail,
		config.AppConfig.BrevoFromName,
	)

	webhookSvc := &webhook.DefaultWebhookService{
		SigningKey:  config.AppConfig.CalendlyWebhookSigningKey,
		Normalizer:  calendlySvc,
		Documents:   docSvc,
		Notifier:    notifySvc,
		DedupClient: utils.GetDedupClient(),
		DedupTTL:    time.Duration(config.AppConfig.DedupTTLHours) * time.Hour,
		Logger:      logger,
	}

	webhookHandler := handlers.NewWebhookHandler(webhookSvc, logger)

	// Register routes with the assembled handler.
	routes.RegisterRoutes(router, webhookHandler)

	utils.StartHealthMonitor(utils.GetDedupClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
