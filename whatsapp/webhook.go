package whatsapp

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler is invoked for each decoded inbound message. Returning an
// error only logs it; the webhook still acknowledges the event.
type MessageHandler func(ctx context.Context, msg *Message) error

// Webhook receives inbound HTTP callbacks from Meta, verifies the shared
// token on the GET handshake, decodes POSTed events and dispatches them to
// the registered handler. Each request is processed to completion with no
// cross-request state.
type Webhook struct {
	bot         *Bot
	verifyToken string
	onMessage   MessageHandler
	logger      *zap.Logger
	engine      *gin.Engine
}

// NewWebhook wires the gin engine with the verification and receive routes.
func NewWebhook(bot *Bot, verifyToken string, onMessage MessageHandler, logger *zap.Logger) (*Webhook, error) {
	if bot == nil {
		return nil, errors.New("a bot instance is required")
	}
	if verifyToken == "" {
		return nil, errors.New("a verify token is required")
	}
	if onMessage == nil {
		return nil, errors.New("a message handler is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Webhook{
		bot:         bot,
		verifyToken: verifyToken,
		onMessage:   onMessage,
		logger:      logger,
	}

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(w.requestLogger())

	r.GET("/webhook", w.verify)
	r.POST("/webhook", w.receive)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w.engine = r
	return w, nil
}

// Engine exposes the underlying handler for embedding into an http.Server.
func (w *Webhook) Engine() *gin.Engine {
	return w.engine
}

// Run serves the webhook on the given address until the listener fails.
func (w *Webhook) Run(addr string) error {
	return w.engine.Run(addr)
}

// verify responds to Meta's webhook verification challenge.
func (w *Webhook) verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if !strings.EqualFold(mode, "subscribe") || token == "" || token != w.verifyToken {
		w.logger.Warn("webhook verification rejected", zap.String("mode", mode))
		c.String(http.StatusForbidden, "verification failed")
		return
	}

	c.String(http.StatusOK, challenge)
}

// receive ingests webhook POST callbacks. Meta redelivers on non-2xx, so
// malformed payloads and handler failures are logged and still acknowledged.
func (w *Webhook) receive(c *gin.Context) {
	defer c.JSON(http.StatusOK, gin.H{"status": "success"})

	var payload WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		w.logger.Warn("invalid webhook payload", zap.Error(err))
		return
	}

	msg, err := ParseMessage(&payload, w.bot)
	if err != nil {
		w.logger.Warn("malformed webhook envelope", zap.Error(err))
		return
	}
	if msg == nil {
		return
	}

	ctx := c.Request.Context()

	if err := w.onMessage(ctx, msg); err != nil {
		w.logger.Error("message handler failed",
			zap.Error(err),
			zap.String("message_id", msg.ID))
	}

	if _, err := w.bot.MarkMessageAsRead(ctx, msg.ID); err != nil {
		w.logger.Error("failed to mark message as read",
			zap.Error(err),
			zap.String("message_id", msg.ID))
	}
}

func (w *Webhook) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		w.logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
