// Package messaging handles the Twilio WhatsApp channel: webhook parsing
// and signature validation inbound, REST sends outbound.
package messaging

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

const whatsappPrefix = "whatsapp:"

// InboundMessage is one WhatsApp message received from Twilio, with the
// channel prefix already stripped from the phone numbers.
type InboundMessage struct {
	MessageSID  string
	From        string
	To          string
	Body        string
	ProfileName string
}

// ErrMissingFields marks a webhook without the fields a message needs.
var ErrMissingFields = errors.New("messaging: webhook missing From or Body")

// ParseWebhook parses a Twilio WhatsApp webhook form post.
func ParseWebhook(r *http.Request) (*InboundMessage, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse form: %w", err)
	}

	msg := &InboundMessage{
		MessageSID:  r.FormValue("MessageSid"),
		From:        strings.TrimPrefix(r.FormValue("From"), whatsappPrefix),
		To:          strings.TrimPrefix(r.FormValue("To"), whatsappPrefix),
		Body:        r.FormValue("Body"),
		ProfileName: r.FormValue("ProfileName"),
	}
	if msg.From == "" || strings.TrimSpace(msg.Body) == "" {
		return nil, ErrMissingFields
	}
	return msg, nil
}

// ValidateSignature validates that a request came from Twilio.
func ValidateSignature(r *http.Request, authToken, webhookURL string) bool {
	signature := r.Header.Get("X-Twilio-Signature")
	if signature == "" {
		return false
	}
	if err := r.ParseForm(); err != nil {
		return false
	}

	payload := buildSignaturePayload(webhookURL, r.PostForm)
	expected := computeSignature(payload, authToken)
	return hmac.Equal([]byte(signature), []byte(expected))
}

// buildSignaturePayload concatenates the URL with the sorted form params,
// per Twilio's signing scheme.
func buildSignaturePayload(url string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var payload strings.Builder
	payload.WriteString(url)
	for _, key := range keys {
		for _, value := range params[key] {
			payload.WriteString(key)
			payload.WriteString(value)
		}
	}
	return payload.String()
}

// computeSignature computes the HMAC-SHA1 signature
func computeSignature(data, key string) string {
	h := hmac.New(sha1.New, []byte(key))
	h.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
