// Package conversation orchestrates one WhatsApp turn: look up the user's
// state, route mid-flow messages to the franchise collector, classify
// everything else, and render a reply.
package conversation

import (
	"context"
	"sync"

	"github.com/mckingstown/salon-bot/internal/convstate"
	"github.com/mckingstown/salon-bot/internal/extract"
	"github.com/mckingstown/salon-bot/internal/franchise"
	"github.com/mckingstown/salon-bot/internal/intent"
	"github.com/mckingstown/salon-bot/internal/messaging"
	"github.com/mckingstown/salon-bot/internal/respond"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

const retryReply = "Sorry, I'm having trouble right now. Please send that again in a moment."

// Service handles inbound messages end to end. Messages from the same user
// are serialized so a fast double-send cannot race the collection flow.
type Service struct {
	classifier *intent.Classifier
	states     convstate.Store
	flow       *franchise.Flow
	logger     *logging.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService wires the conversation orchestrator.
func NewService(classifier *intent.Classifier, states convstate.Store, flow *franchise.Flow, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		classifier: classifier,
		states:     states,
		flow:       flow,
		logger:     logger,
		locks:      make(map[string]*sync.Mutex),
	}
}

var _ messaging.Responder = (*Service)(nil)

// HandleMessage produces the reply for one inbound message. It returns an
// error only when no reply at all could be produced; degraded paths answer
// with an apology instead.
func (s *Service) HandleMessage(ctx context.Context, msg *messaging.InboundMessage) (string, error) {
	lock := s.userLock(msg.From)
	lock.Lock()
	defer lock.Unlock()

	st, err := s.states.Get(ctx, msg.From)
	if err != nil {
		// Without state we could mis-handle a mid-flow answer as a fresh
		// message, so ask for a retry instead of guessing.
		s.logger.Error("state lookup failed", "phone", msg.From, "error", err)
		return retryReply, nil
	}

	if st.InFlow() {
		return s.continueFlow(ctx, st, msg), nil
	}
	return s.handleFresh(ctx, st, msg), nil
}

// continueFlow feeds one message to the lead-collection state machine.
func (s *Service) continueFlow(ctx context.Context, st *convstate.Context, msg *messaging.InboundMessage) string {
	res := s.flow.Step(ctx, st, msg.Body, msg.ProfileName, st.Enquiry)
	switch {
	case res.Corrupt:
		if err := s.states.Clear(ctx, st.Phone); err != nil {
			s.logger.Error("failed to clear corrupt context", "phone", st.Phone, "error", err)
		}
	case res.Done:
		// Back to a bare franchise topic; a later "I'm interested" starts
		// a fresh flow.
		s.saveState(ctx, &convstate.Context{
			Phone:   st.Phone,
			Intent:  convstate.IntentFranchise,
			Enquiry: st.Enquiry,
		})
	default:
		s.saveState(ctx, st)
	}
	return res.Reply
}

// handleFresh classifies a message that is not part of a collection flow.
func (s *Service) handleFresh(ctx context.Context, st *convstate.Context, msg *messaging.InboundMessage) string {
	// A contact signal inside an ongoing franchise conversation starts
	// collection regardless of what the classifier thinks of the wording.
	if st != nil && st.Intent == convstate.IntentFranchise && franchise.WantsContact(msg.Body) {
		return s.beginFlow(ctx, st.Phone, st.Enquiry, "")
	}

	res := s.classifier.Classify(ctx, msg.From, msg.Body)
	s.logger.Debug("message classified",
		"phone", msg.From, "intent", res.Intent, "source", res.Source, "confidence", res.Confidence)

	if res.Intent == intent.IntentFranchise {
		enquiry := franchise.TypeOf(msg.Body)
		if franchise.WantsContact(msg.Body) {
			return s.beginFlow(ctx, msg.From, enquiry, "")
		}
		s.saveState(ctx, &convstate.Context{
			Phone:   msg.From,
			Intent:  convstate.IntentFranchise,
			Enquiry: enquiry,
		})
		return respond.Franchise(enquiry)
	}

	if serviceTopic(res.Intent) {
		s.saveState(ctx, &convstate.Context{Phone: msg.From, Intent: convstate.IntentServices})
	}

	// NLU and generative stages arrive with ready text.
	if res.Reply != "" {
		return res.Reply
	}

	params := respond.Params{ProfileName: msg.ProfileName}
	if loc, ok := extract.Location(msg.Body); ok {
		// A bare city dropped into an ongoing franchise conversation is the
		// opt-in: the user is naming where they want the outlet. Messages
		// the classifier resolved (e.g. "outlets in Chennai") keep their
		// normal reply.
		if st != nil && st.Intent == convstate.IntentFranchise && res.Source == intent.SourceDefault {
			return s.beginFlow(ctx, st.Phone, st.Enquiry, loc)
		}
		params.Location = loc
	}
	if dt, ok := extract.DateTimeMention(msg.Body); ok {
		params.Day, params.Time = dt.Day, dt.Time
	}
	return respond.ForIntent(res.Intent, params)
}

func (s *Service) beginFlow(ctx context.Context, phone, enquiry, location string) string {
	st := &convstate.Context{Phone: phone, Enquiry: enquiry}
	var reply string
	if location != "" {
		reply = s.flow.BeginWithLocation(st, location)
	} else {
		reply = s.flow.Begin(st)
	}
	if err := s.states.Set(ctx, st); err != nil {
		// If the stage cannot be stored the next answer would go nowhere,
		// so do not pretend collection started.
		s.logger.Error("failed to start collection flow", "phone", phone, "error", err)
		return retryReply
	}
	return reply
}

func (s *Service) saveState(ctx context.Context, st *convstate.Context) {
	if err := s.states.Set(ctx, st); err != nil {
		s.logger.Error("failed to save context", "phone", st.Phone, "error", err)
	}
}

func serviceTopic(name string) bool {
	switch name {
	case intent.IntentHaircut, intent.IntentBeard, intent.IntentFacial,
		intent.IntentSpa, intent.IntentColor, intent.IntentMassage,
		intent.IntentWedding, intent.IntentGroom:
		return true
	}
	return false
}

func (s *Service) userLock(phone string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[phone]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[phone] = lock
	}
	return lock
}
