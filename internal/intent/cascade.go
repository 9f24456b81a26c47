package intent

import (
	"context"
	"errors"
	"strings"

	"github.com/mckingstown/salon-bot/internal/extract"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

// nluAcceptConfidence is the exclusive floor for trusting the external
// classifier's answer.
const nluAcceptConfidence = 0.7

// nluIntentMap translates the external classifier's display names to
// internal intents. Unmapped names pass through lower-cased.
var nluIntentMap = map[string]string{
	"Haircut Services":  IntentHaircut,
	"Beard Services":    IntentBeard,
	"Facial Services":   IntentFacial,
	"Spa Services":      IntentSpa,
	"Color Services":    IntentColor,
	"Wedding Packages":  IntentWedding,
	"Franchise Enquiry": IntentFranchise,
	"Price Enquiry":     IntentPrice,
	"Outlet Locations":  IntentLocation,
	"Working Hours":     IntentTiming,
	"Book Appointment":  IntentBooking,
	"Welcome":           IntentGreeting,
}

// Classifier runs the resolution cascade. The NLU and generative
// collaborators are optional; a nil collaborator skips its stage.
type Classifier struct {
	nlu     NLUClient
	gen     Generator
	nluMin  float64
	logger  *logging.Logger
	metrics Recorder
}

// Recorder receives one observation per classified message. Implemented by
// the observability package; a nil Recorder is a no-op.
type Recorder interface {
	ObserveClassification(source, intent string)
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithNLU attaches the external classifier stage.
func WithNLU(c NLUClient) Option {
	return func(cl *Classifier) { cl.nlu = c }
}

// WithGenerator attaches the generative fallback stage.
func WithGenerator(g Generator) Option {
	return func(cl *Classifier) { cl.gen = g }
}

// WithNLUMinConfidence overrides the NLU acceptance floor.
func WithNLUMinConfidence(min float64) Option {
	return func(cl *Classifier) { cl.nluMin = min }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(cl *Classifier) { cl.metrics = r }
}

// NewClassifier builds the cascade.
func NewClassifier(logger *logging.Logger, opts ...Option) *Classifier {
	cl := &Classifier{
		nluMin: nluAcceptConfidence,
		logger: logger,
	}
	for _, opt := range opts {
		opt(cl)
	}
	if cl.logger == nil {
		cl.logger = logging.Default()
	}
	return cl
}

// Classify resolves one message. It never returns an error: every failure
// mode degrades to a later stage and the default stage always answers.
func (cl *Classifier) Classify(ctx context.Context, sessionID, message string) Result {
	res := cl.classify(ctx, sessionID, message)
	if cl.metrics != nil {
		cl.metrics.ObserveClassification(string(res.Source), res.Intent)
	}
	return res
}

func (cl *Classifier) classify(ctx context.Context, sessionID, message string) Result {
	if res, ok := MatchCommand(message); ok {
		return res
	}

	if res, ok := MatchPattern(message); ok {
		return res
	}

	if cl.nlu != nil {
		nluRes, err := cl.nlu.DetectIntent(ctx, sessionID, message)
		switch {
		case err != nil:
			cl.logger.Warn("nlu detection failed, falling through", "error", err)
		case nluRes.Intent == NLUFallbackIntent:
			// The service explicitly did not understand; keep cascading.
		case nluRes.Confidence > cl.nluMin:
			return Result{
				Intent:     mapNLUIntent(nluRes.Intent),
				Confidence: nluRes.Confidence,
				Source:     SourceNLU,
				Reply:      nluRes.FulfillmentText,
			}
		}
	}

	if cl.gen != nil && shouldGenerate(message) {
		reply, err := cl.gen.Generate(ctx, message)
		if err != nil {
			if !errors.Is(err, ErrGeneratorDisabled) {
				cl.logger.Warn("generative stage failed, falling through", "error", err)
			}
		} else {
			return Result{
				Intent:     IntentDefault,
				Confidence: 0.6,
				Source:     SourceGenerative,
				Reply:      reply,
			}
		}
	}

	return Result{Intent: IntentDefault, Confidence: 0, Source: SourceDefault}
}

func mapNLUIntent(display string) string {
	if it, ok := nluIntentMap[display]; ok {
		return it
	}
	return strings.ToLower(display)
}

// interrogatives are cheap cues that a short message is still a question
// worth sending to the model.
var interrogatives = []string{
	"what", "why", "how", "when", "where", "who", "which", "can", "could",
	"do you", "does", "is there", "are there", "tell me",
}

// shouldGenerate gates the generative stage. Long messages and questions
// qualify; short keyword-like messages and bare city names do not, because
// the deterministic stages already had their chance and a model call for
// "ok" or "chennai" wastes eight seconds to say nothing useful.
func shouldGenerate(message string) bool {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return false
	}
	if isKnownKeyword(lowered) {
		return false
	}
	if _, ok := extract.Location(lowered); ok && len(strings.Fields(lowered)) <= 3 {
		// A bare city name is an answer fragment, not a question.
		return false
	}

	if len(strings.Fields(lowered)) > 3 {
		return true
	}
	if strings.Contains(lowered, "?") {
		return true
	}
	for _, cue := range interrogatives {
		if strings.HasPrefix(lowered, cue) {
			return true
		}
	}
	return false
}

// isKnownKeyword reports whether the whole message is a term some pattern
// already knows about. Those were scored and rejected; the model will not
// do better with the same single word.
func isKnownKeyword(lowered string) bool {
	for _, p := range patterns {
		for _, tier := range [][]string{p.exact, p.question, p.typo, p.related} {
			for _, term := range tier {
				if lowered == term {
					return true
				}
			}
		}
	}
	return false
}
