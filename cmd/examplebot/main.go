// Command examplebot runs a minimal WhatsApp bot on top of the SDK: it
// serves the webhook, echoes text messages back to the sender and logs
// everything else it receives.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/t-ega/whatsapp-cloud-sdk/messages"
	"github.com/t-ega/whatsapp-cloud-sdk/pkg/logger"
	"github.com/t-ega/whatsapp-cloud-sdk/whatsapp"
)

func main() {
	cfg, err := whatsapp.ConfigFromEnv("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	bot, err := whatsapp.NewBot(*cfg, baseLogger.Named("bot"))
	if err != nil {
		baseLogger.Fatal("failed to init bot", zap.Error(err))
	}

	botLogger := baseLogger.Named("examplebot")

	webhook, err := whatsapp.NewWebhook(bot, cfg.VerifyToken, func(ctx context.Context, msg *whatsapp.Message) error {
		botLogger.Info("message received",
			zap.String("from", msg.FromUser),
			zap.String("type", string(msg.Type)),
			zap.String("timestamp", msg.Timestamp.String()))

		if msg.Type != messages.MessageTypeText {
			return nil
		}

		_, err := msg.ReplyText(ctx, fmt.Sprintf("You said: %s", msg.Text))
		return err
	}, baseLogger.Named("webhook"))
	if err != nil {
		baseLogger.Fatal("failed to init webhook", zap.Error(err))
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      webhook.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
