package messaging

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"time"

	"github.com/mckingstown/salon-bot/internal/observability/metrics"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

// Responder turns an inbound message into reply text. Implemented by the
// conversation service.
type Responder interface {
	HandleMessage(ctx context.Context, msg *InboundMessage) (string, error)
}

// WebhookHandler receives Twilio WhatsApp webhooks and answers with TwiML,
// so the user's reply rides the webhook response instead of a second API
// call.
type WebhookHandler struct {
	responder  Responder
	authToken  string
	webhookURL string
	logger     *logging.Logger
	metrics    *metrics.BotMetrics
}

// NewWebhookHandler wires the webhook. An empty authToken disables
// signature validation for local development.
func NewWebhookHandler(responder Responder, authToken, webhookURL string, logger *logging.Logger, m *metrics.BotMetrics) *WebhookHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WebhookHandler{
		responder:  responder,
		authToken:  authToken,
		webhookURL: webhookURL,
		logger:     logger,
		metrics:    m,
	}
}

// twimlResponse is the minimal TwiML document for a message reply.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message,omitempty"`
}

// ServeHTTP handles POST /webhook/whatsapp requests
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.authToken != "" && !ValidateSignature(r, h.authToken, h.webhookURL) {
		h.logger.Warn("webhook signature validation failed", "remote", r.RemoteAddr)
		h.observe("unauthorized", start)
		http.Error(w, "invalid signature", http.StatusForbidden)
		return
	}

	msg, err := ParseWebhook(r)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			// Status callbacks and media-only messages land here; nothing
			// to answer.
			h.observe("ignored", start)
			h.writeTwiML(w, "")
			return
		}
		h.logger.Error("failed to parse webhook", "error", err)
		h.observe("malformed", start)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	reply, err := h.responder.HandleMessage(r.Context(), msg)
	if err != nil {
		// The responder degrades internally; an error here means even the
		// fallback path failed. Answer something rather than go silent.
		h.logger.Error("message handling failed", "from", msg.From, "error", err)
		reply = "Sorry, something went wrong on our side. Please try again in a moment."
		h.observe("error", start)
	} else {
		h.observe("ok", start)
	}

	h.writeTwiML(w, reply)
}

func (h *WebhookHandler) writeTwiML(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	out, err := xml.Marshal(twimlResponse{Message: message})
	if err != nil {
		return
	}
	w.Write([]byte(xml.Header))
	w.Write(out)
}

func (h *WebhookHandler) observe(status string, start time.Time) {
	h.metrics.ObserveInbound(status)
	h.metrics.ObserveWebhookLatency(status, time.Since(start).Seconds())
}
