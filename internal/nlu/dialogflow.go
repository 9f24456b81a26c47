// Package nlu wraps the Dialogflow ES sessions API behind the classifier's
// NLUClient interface.
package nlu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"google.golang.org/api/option"

	"github.com/mckingstown/salon-bot/internal/intent"
)

// DialogflowClient detects intents through a Dialogflow ES agent. Session
// IDs are derived from the user's phone number so the agent keeps its own
// per-user dialogue contexts.
type DialogflowClient struct {
	sessions  *dialogflow.SessionsClient
	projectID string
	language  string
	timeout   time.Duration
}

// Config holds the Dialogflow connection settings.
type Config struct {
	ProjectID       string
	CredentialsFile string
	LanguageCode    string
	Timeout         time.Duration
}

// NewDialogflowClient connects to the Dialogflow sessions API.
func NewDialogflowClient(ctx context.Context, cfg Config) (*DialogflowClient, error) {
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, errors.New("nlu: dialogflow project id is required")
	}
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	sessions, err := dialogflow.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("nlu: failed to create dialogflow sessions client: %w", err)
	}

	return &DialogflowClient{
		sessions:  sessions,
		projectID: cfg.ProjectID,
		language:  cfg.LanguageCode,
		timeout:   cfg.Timeout,
	}, nil
}

// DetectIntent sends one message to the agent and returns the matched
// intent, its confidence, and any fulfillment text the agent composed.
func (c *DialogflowClient) DetectIntent(ctx context.Context, sessionID, text string) (intent.NLUResult, error) {
	if strings.TrimSpace(text) == "" {
		return intent.NLUResult{}, errors.New("nlu: empty message")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &dialogflowpb.DetectIntentRequest{
		Session: fmt.Sprintf("projects/%s/agent/sessions/%s", c.projectID, sanitizeSessionID(sessionID)),
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{
					Text:         text,
					LanguageCode: c.language,
				},
			},
		},
	}

	resp, err := c.sessions.DetectIntent(ctx, req)
	if err != nil {
		return intent.NLUResult{}, fmt.Errorf("nlu: detect intent failed: %w", err)
	}

	qr := resp.GetQueryResult()
	res := intent.NLUResult{
		Confidence:      float64(qr.GetIntentDetectionConfidence()),
		FulfillmentText: qr.GetFulfillmentText(),
	}
	if qr.GetIntent() != nil {
		res.Intent = qr.GetIntent().GetDisplayName()
	}
	return res, nil
}

// Close releases the sessions client.
func (c *DialogflowClient) Close() error {
	return c.sessions.Close()
}

// sanitizeSessionID strips characters the sessions path cannot carry.
// Phone numbers arrive as "+9198...", and "+" is not path-safe.
func sanitizeSessionID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "anonymous"
	}
	return sb.String()
}
