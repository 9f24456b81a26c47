package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/mckingstown/salon-bot/internal/api/router"
	"github.com/mckingstown/salon-bot/internal/catalog"
	appconfig "github.com/mckingstown/salon-bot/internal/config"
	"github.com/mckingstown/salon-bot/internal/conversation"
	"github.com/mckingstown/salon-bot/internal/convstate"
	"github.com/mckingstown/salon-bot/internal/franchise"
	"github.com/mckingstown/salon-bot/internal/intent"
	"github.com/mckingstown/salon-bot/internal/leads"
	"github.com/mckingstown/salon-bot/internal/messaging"
	"github.com/mckingstown/salon-bot/internal/nlu"
	"github.com/mckingstown/salon-bot/internal/observability/metrics"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

func main() {
	// Load .env in development; production sets real environment variables.
	_ = godotenv.Load()
	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting salon-bot API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()
	botMetrics := metrics.NewBotMetrics(nil)

	// Lead storage
	leadStore, err := leads.NewFileStore(cfg.LeadsFile)
	if err != nil {
		logger.Error("failed to open lead store", "file", cfg.LeadsFile, "error", err)
		os.Exit(1)
	}

	// Conversation state: Redis when configured, process memory otherwise.
	var states convstate.Store
	if !cfg.UseMemoryState && cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		states = convstate.NewRedisStore(redis.NewClient(opts), cfg.ContextTimeout)
		logger.Info("conversation state in redis", "addr", cfg.RedisAddr)
	} else {
		states = convstate.NewMemoryStore(cfg.ContextTimeout)
		logger.Info("conversation state in memory")
	}

	// Classifier stages; each external stage is optional and the cascade
	// degrades around whatever is missing.
	opts := []intent.Option{
		intent.WithRecorder(botMetrics),
		intent.WithNLUMinConfidence(cfg.NLUMinConfidence),
	}
	if cfg.DialogflowProjectID != "" {
		dialogflowClient, err := nlu.NewDialogflowClient(ctx, nlu.Config{
			ProjectID:       cfg.DialogflowProjectID,
			CredentialsFile: cfg.DialogflowCredentialsFile,
			Timeout:         cfg.NLUTimeout,
		})
		if err != nil {
			logger.Error("dialogflow unavailable, nlu stage disabled", "error", err)
		} else {
			defer dialogflowClient.Close()
			opts = append(opts, intent.WithNLU(dialogflowClient))
			logger.Info("nlu stage enabled", "project", cfg.DialogflowProjectID)
		}
	}
	if cfg.GeminiEnabled && cfg.GeminiAPIKey != "" {
		generator, err := intent.NewGeminiGenerator(ctx, intent.GeminiConfig{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			Timeout:     cfg.GeminiTimeout,
			MaxTokens:   int32(cfg.GeminiMaxTokens),
			Temperature: float32(cfg.GeminiTemperature),
		}, logger.Component("gemini"))
		if err != nil {
			logger.Error("gemini unavailable, generative stage disabled", "error", err)
		} else {
			defer generator.Close()
			opts = append(opts, intent.WithGenerator(generator))
			logger.Info("generative stage enabled", "model", cfg.GeminiModel)
		}
	}
	classifier := intent.NewClassifier(logger.Component("intent"), opts...)

	// Franchise lead pipeline
	var notifier franchise.Notifier
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		notifier = messaging.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken,
			cfg.TwilioWhatsAppFrom, logger.Component("twilio"), botMetrics)
	} else {
		logger.Warn("twilio credentials missing, leads will be logged without forwarding")
	}
	forwarder := franchise.NewForwarder(leadStore, catalog.DefaultDirectory(), notifier,
		logger.Component("franchise"), botMetrics)

	// Conversation orchestrator and webhook
	svc := conversation.NewService(classifier, states, franchise.NewFlow(forwarder),
		logger.Component("conversation"))
	webhookURL := strings.TrimSuffix(cfg.PublicBaseURL, "/") + "/webhook/whatsapp"
	webhook := messaging.NewWebhookHandler(svc, cfg.TwilioAuthToken, webhookURL,
		logger.Component("webhook"), botMetrics)

	r := router.New(&router.Config{
		Logger:             logger,
		WebhookHandler:     webhook,
		LeadsHandler:       leads.NewHandler(leadStore, logger.Component("dashboard")),
		MetricsHandler:     promhttp.Handler(),
		DashboardSecret:    cfg.AdminJWTSecret,
		CORSAllowedOrigins: splitOrigins(cfg.CORSAllowedOrigins),
		WebhookRatePerSec:  5,
		WebhookBurst:       10,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server stopped")
}

func splitOrigins(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
