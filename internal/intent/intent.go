// Package intent resolves raw WhatsApp messages to named intents through a
// prioritized cascade: literal commands, weighted pattern matching, an
// external NLU service, a generative fallback, and a static default. Earlier
// stages are cheaper and more deterministic; each stage only runs when every
// stage before it declined.
package intent

import "context"

// Known intents. Pattern tables and response formatting key off these.
const (
	IntentMenu      = "menu"
	IntentHaircut   = "haircut"
	IntentBeard     = "beard"
	IntentFacial    = "facial"
	IntentSpa       = "spa"
	IntentColor     = "color"
	IntentWedding   = "wedding"
	IntentMassage   = "massage"
	IntentGroom     = "groom"
	IntentFranchise = "franchise"
	IntentPrice     = "price"
	IntentLocation  = "location"
	IntentTiming    = "timing"
	IntentBooking   = "booking"
	IntentGreeting  = "greeting"
	IntentHelp      = "help"
	IntentThanks    = "thanks"
	IntentBye       = "bye"
	IntentDefault   = "default"
)

// Source identifies which cascade stage produced a classification.
type Source string

const (
	SourceCommand    Source = "command"
	SourcePattern    Source = "pattern"
	SourceNLU        Source = "nlu"
	SourceGenerative Source = "generative"
	SourceDefault    Source = "default"
)

// Result is the outcome of classifying one message.
type Result struct {
	Intent     string
	Confidence float64
	Source     Source
	// Matched is the pattern term that scored, when Source is pattern.
	Matched string
	// Reply carries ready-to-send text produced by the NLU or generative
	// stage. Empty for deterministic stages; the formatter renders those.
	Reply string
}

// NLUResult is the external classifier's answer for one message.
type NLUResult struct {
	Intent          string
	Confidence      float64
	FulfillmentText string
}

// NLUClient is the external intent classifier collaborator. sessionID must
// be stable per user so the service can keep its own dialogue state.
type NLUClient interface {
	DetectIntent(ctx context.Context, sessionID, text string) (NLUResult, error)
}

// Generator is the generative-text fallback collaborator.
type Generator interface {
	Generate(ctx context.Context, userMessage string) (string, error)
	// Status reports whether the generator is usable, and why not if so.
	Status() CircuitState
}

// NLUFallbackIntent is the external classifier's "no match" sentinel. It
// must fall through the cascade rather than be treated as an answer.
const NLUFallbackIntent = "Default Fallback Intent"
