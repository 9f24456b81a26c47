package franchise

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mckingstown/salon-bot/internal/convstate"
	"github.com/mckingstown/salon-bot/internal/extract"
	"github.com/mckingstown/salon-bot/internal/leads"
)

// Flow is the multi-turn lead-collection state machine. Each Step consumes
// one user message, advances the stage stored in the conversation context,
// and on the final step submits the lead synchronously so the confirmation
// can quote the real lead ID.
type Flow struct {
	forwarder *Forwarder
}

// NewFlow creates the collection flow over a lead forwarder.
func NewFlow(forwarder *Forwarder) *Flow {
	return &Flow{forwarder: forwarder}
}

// StepResult is the outcome of consuming one in-flow message.
type StepResult struct {
	Reply string
	// Done means the flow ended, by submission or exit; the caller should
	// reset the context to a bare franchise topic.
	Done bool
	// Corrupt means the stored draft was inconsistent with its stage; the
	// caller should clear the context entirely.
	Corrupt bool
}

// Begin stamps the context for collection and returns the opening prompt.
func (f *Flow) Begin(st *convstate.Context) string {
	st.Intent = convstate.IntentFranchise
	st.Stage = convstate.StageCollectingName
	st.Draft = convstate.Draft{}
	return "Great! Our franchise advisor will reach out to you. 📋\n\n" +
		"First, may I have your full name?"
}

// BeginWithLocation starts collection for a user who already named the city
// they want the outlet in, so the location question is skipped. The opening
// prompt names the regional advisor covering that city when one exists.
func (f *Flow) BeginWithLocation(st *convstate.Context, location string) string {
	st.Intent = convstate.IntentFranchise
	st.Stage = convstate.StageCollectingName
	st.Draft = convstate.Draft{Location: location}

	who := "Our franchise advisor"
	if f.forwarder != nil {
		if advisor, ok := f.forwarder.directory.ByLocation(location); ok {
			who = "Our " + advisor.Name
		}
	}
	return fmt.Sprintf("%s is a great market for us! 📍 %s handles that area and will reach out to you.\n\n"+
		"First, may I have your full name?", location, who)
}

// Step consumes one message from a user who is mid-flow.
func (f *Flow) Step(ctx context.Context, st *convstate.Context, message, profileName, enquiryType string) StepResult {
	if WantsExit(message) {
		return StepResult{
			Reply: "No problem, I've cancelled that. You can say 'I'm interested' anytime to continue. Type 'menu' for other options.",
			Done:  true,
		}
	}

	switch st.Stage {
	case convstate.StageCollectingName:
		return f.stepName(st, message)
	case convstate.StageCollectingLocation:
		if st.Draft.Name == "" {
			return StepResult{Reply: restartReply, Corrupt: true}
		}
		return f.stepLocation(st, message)
	case convstate.StageCollectingEmail:
		if st.Draft.Name == "" || st.Draft.Location == "" {
			return StepResult{Reply: restartReply, Corrupt: true}
		}
		return f.stepEmail(st, message)
	case convstate.StageCollectingDetails:
		if st.Draft.Name == "" || st.Draft.Location == "" {
			return StepResult{Reply: restartReply, Corrupt: true}
		}
		return f.stepDetails(ctx, st, message, profileName, enquiryType)
	default:
		return StepResult{Reply: restartReply, Corrupt: true}
	}
}

const restartReply = "Sorry, something went wrong with your enquiry. " +
	"Please say 'I'm interested' to start again."

var nameRe = regexp.MustCompile(`^[\p{L}][\p{L}\s.'-]{1,60}$`)

func (f *Flow) stepName(st *convstate.Context, message string) StepResult {
	name := strings.TrimSpace(message)
	if !nameRe.MatchString(name) {
		return StepResult{Reply: "That doesn't look like a name. Please share your full name."}
	}
	st.Draft.Name = name
	if st.Draft.Location != "" {
		// City already captured at entry; go straight to email.
		st.Stage = convstate.StageCollectingEmail
		return StepResult{Reply: fmt.Sprintf("Thanks %s! What's your email address? (or type 'skip')", firstName(name))}
	}
	st.Stage = convstate.StageCollectingLocation
	return StepResult{Reply: fmt.Sprintf("Thanks %s! Which city or area are you looking to open the franchise in?", firstName(name))}
}

func (f *Flow) stepLocation(st *convstate.Context, message string) StepResult {
	location, ok := extract.Location(message)
	if !ok {
		location = strings.TrimSpace(message)
	}
	if len(location) < 2 {
		return StepResult{Reply: "Please tell me the city or area you have in mind."}
	}
	st.Draft.Location = location
	st.Stage = convstate.StageCollectingEmail
	return StepResult{Reply: fmt.Sprintf("%s, nice choice! 📍\n\nWhat's your email address? (or type 'skip')", location)}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (f *Flow) stepEmail(st *convstate.Context, message string) StepResult {
	answer := strings.TrimSpace(message)
	if strings.EqualFold(answer, "skip") {
		st.Draft.Email = "Not provided"
	} else if emailRe.MatchString(answer) {
		st.Draft.Email = answer
	} else {
		return StepResult{Reply: "That email doesn't look right. Please re-enter it, or type 'skip'."}
	}
	st.Stage = convstate.StageCollectingDetails
	return StepResult{Reply: "Almost done! Anything specific you'd like the advisor to know?\n" +
		"(budget, timeline, experience...) Or type 'done' to finish."}
}

func (f *Flow) stepDetails(ctx context.Context, st *convstate.Context, message, profileName, enquiryType string) StepResult {
	details := strings.TrimSpace(message)
	if strings.EqualFold(details, "done") {
		details = ""
	}
	st.Draft.Details = details

	outcome, err := f.forwarder.Submit(ctx, &leads.CreateLeadRequest{
		Phone:       st.Phone,
		ProfileName: profileName,
		Name:        st.Draft.Name,
		Location:    st.Draft.Location,
		Email:       st.Draft.Email,
		Details:     st.Draft.Details,
		EnquiryType: enquiryType,
	})
	if err != nil {
		// The lead never reached storage. Keep the stage so the user's next
		// message retries instead of losing everything collected so far.
		return StepResult{Reply: "Sorry, I couldn't save your enquiry just now. " +
			"Please type 'done' again in a moment."}
	}

	reply := fmt.Sprintf("✅ Thank you %s! Your franchise enquiry is registered.\n\n"+
		"Reference: %s\n", firstName(st.Draft.Name), outcome.Lead.ID)
	if outcome.Forwarded {
		reply += fmt.Sprintf("Our %s will contact you within 24 hours. 🤝", outcome.Advisor)
	} else {
		reply += "Our franchise team will contact you within 24-48 hours. 🤝"
	}
	return StepResult{Reply: reply, Done: true}
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
