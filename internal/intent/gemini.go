package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mckingstown/salon-bot/internal/catalog"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

// ErrGeneratorDisabled is returned once the circuit breaker has opened.
var ErrGeneratorDisabled = errors.New("intent: generative stage disabled")

// maxReplyChars keeps generated replies inside a single WhatsApp message.
const maxReplyChars = 3800

// GeminiConfig holds the tunables for the generative fallback.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxTokens   int32
	Temperature float32
}

// GeminiGenerator answers open-ended questions from a brand knowledge base
// using Google's Gemini API. A credential failure opens a process-lifetime
// circuit breaker so subsequent messages skip the stage immediately.
type GeminiGenerator struct {
	client  *genai.Client
	modelID string
	timeout time.Duration
	maxTok  int32
	temp    float32
	logger  *logging.Logger

	mu    sync.Mutex
	state CircuitState

	// invoke performs the actual model call; tests swap it out.
	invoke func(ctx context.Context, userMessage string) (string, error)
}

// NewGeminiGenerator creates the generative fallback client.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig, logger *logging.Logger) (*GeminiGenerator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("intent: gemini api key is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("intent: failed to create gemini client: %w", err)
	}

	g := &GeminiGenerator{
		client:  client,
		modelID: cfg.Model,
		timeout: cfg.Timeout,
		maxTok:  cfg.MaxTokens,
		temp:    cfg.Temperature,
		logger:  logger,
		state:   CircuitActive(),
	}
	g.invoke = g.callModel
	return g, nil
}

// Generate produces a grounded reply to the user's message, or an error when
// the model is unreachable, times out, or the breaker is open.
func (g *GeminiGenerator) Generate(ctx context.Context, userMessage string) (string, error) {
	g.mu.Lock()
	state := g.state
	g.mu.Unlock()
	if !state.Active() {
		return "", fmt.Errorf("%w: %s", ErrGeneratorDisabled, state.Reason())
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	reply, err := g.invoke(ctx, userMessage)
	if err != nil {
		if isCredentialError(err) {
			g.trip(err.Error())
		}
		return "", fmt.Errorf("intent: gemini generation failed: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errors.New("intent: gemini returned empty text")
	}
	if len(reply) > maxReplyChars {
		reply = reply[:maxReplyChars]
	}
	return reply, nil
}

// callModel is the real Gemini invocation behind Generate.
func (g *GeminiGenerator) callModel(ctx context.Context, userMessage string) (string, error) {
	model := g.client.GenerativeModel(g.modelID)
	model.SetTemperature(g.temp)
	if g.maxTok > 0 {
		model.SetMaxOutputTokens(g.maxTok)
	}
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt()))

	resp, err := model.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("intent: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("intent: gemini returned empty content")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Status returns the current breaker state.
func (g *GeminiGenerator) Status() CircuitState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *GeminiGenerator) trip(reason string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Active() {
		g.state = CircuitDisabled(reason)
		if g.logger != nil {
			g.logger.Error("generative stage disabled for this process", "reason", reason)
		}
	}
}

// isCredentialError detects a rejected API key. Transient failures such as
// timeouts or rate limits must not open the breaker.
func isCredentialError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "API_KEY_INVALID") ||
		strings.Contains(msg, "API key not valid") ||
		strings.Contains(msg, "PERMISSION_DENIED")
}

// systemPrompt assembles the brand knowledge base the model must stay
// inside. Anything not covered here gets redirected to the menu.
func systemPrompt() string {
	eco := catalog.Economics()
	var sb strings.Builder
	sb.WriteString("You are the WhatsApp assistant for McKingstown, a men's salon chain with ")
	fmt.Fprintf(&sb, "%d outlets across India and Dubai.\n\n", catalog.TotalOutlets)
	sb.WriteString("Rules:\n")
	sb.WriteString("- Answer only questions about McKingstown services, prices, outlets, timings and franchise opportunities.\n")
	sb.WriteString("- Keep replies short and WhatsApp-friendly. No markdown tables.\n")
	sb.WriteString("- If the question is outside salon topics, politely say so and suggest typing 'menu'.\n")
	sb.WriteString("- Never invent prices or locations not listed below.\n\n")

	sb.WriteString("Services:\n")
	for _, cat := range catalog.Services() {
		fmt.Fprintf(&sb, "%s:\n", cat.Title)
		for _, item := range cat.Items {
			fmt.Fprintf(&sb, "- %s: Rs.%d\n", item.Name, item.Price)
		}
	}

	sb.WriteString("\nFranchise:\n")
	fmt.Fprintf(&sb, "- Total investment: Rs.%d lakhs (franchise fee %d, interiors %d, equipment %d, working capital %d)\n",
		eco.TotalInvestmentLakhs, eco.FranchiseFeeLakhs, eco.InteriorSetupLakhs, eco.EquipmentLakhs, eco.WorkingCapitalLakhs)
	fmt.Fprintf(&sb, "- Expected ROI: %d-%d months; annual revenue Rs.%d-%d lakhs; margin %d-%d%%\n",
		eco.ROIMonthsMin, eco.ROIMonthsMax, eco.RevenueLakhsMin, eco.RevenueLakhsMax, eco.ProfitMarginMinPct, eco.ProfitMarginMaxPct)
	fmt.Fprintf(&sb, "- Space needed: %d-%d sq ft, staff %d-%d\n", eco.AreaSqFtMin, eco.AreaSqFtMax, eco.StaffMin, eco.StaffMax)
	fmt.Fprintf(&sb, "- Contact: %s / %s\n", eco.TollFree, eco.Email)

	sb.WriteString("\nCities with outlets: ")
	sb.WriteString(strings.Join(catalog.AllCities(), ", "))
	sb.WriteString("\nTimings: 10am to 9pm, all days including Sundays.\n")
	return sb.String()
}
