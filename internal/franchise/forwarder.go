package franchise

import (
	"context"
	"fmt"
	"strings"

	"github.com/mckingstown/salon-bot/internal/catalog"
	"github.com/mckingstown/salon-bot/internal/leads"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

// Notifier delivers a WhatsApp message to an advisor.
type Notifier interface {
	Send(ctx context.Context, to, body string) error
}

// Recorder receives forwarding observations. Implemented by the
// observability package; nil is a no-op.
type Recorder interface {
	LeadCreated(enquiryType string)
	LeadForwarded(ok bool)
}

// Outcome reports what happened to a submitted lead. The lead itself is
// always persisted; forwarding may or may not have gone through.
type Outcome struct {
	Lead      *leads.Lead
	Forwarded bool
	Advisor   string
}

// Forwarder persists finished leads and forwards them to regional advisors.
// Persistence always happens first: a notification failure must never cost
// the lead itself.
type Forwarder struct {
	store     leads.Store
	directory *catalog.Directory
	notifier  Notifier
	logger    *logging.Logger
	metrics   Recorder
}

// NewForwarder wires the lead pipeline. notifier and metrics may be nil;
// leads are then logged without forwarding.
func NewForwarder(store leads.Store, directory *catalog.Directory, notifier Notifier, logger *logging.Logger, metrics Recorder) *Forwarder {
	if directory == nil {
		directory = catalog.DefaultDirectory()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Forwarder{
		store:     store,
		directory: directory,
		notifier:  notifier,
		logger:    logger,
		metrics:   metrics,
	}
}

// Submit stores the lead, then attempts the advisor handoff. Only the store
// write can fail the call; every forwarding problem is recorded on the lead
// and swallowed.
func (f *Forwarder) Submit(ctx context.Context, req *leads.CreateLeadRequest) (Outcome, error) {
	lead, err := f.store.Create(ctx, req)
	if err != nil {
		return Outcome{}, fmt.Errorf("franchise: failed to log lead: %w", err)
	}
	f.logger.Info("franchise lead logged", "id", lead.ID, "location", lead.Location, "enquiry", lead.EnquiryType)
	if f.metrics != nil {
		f.metrics.LeadCreated(lead.EnquiryType)
	}

	outcome := Outcome{Lead: lead}

	advisor, ok := f.directory.ByLocation(lead.Location)
	if !ok {
		f.recordFailure(ctx, lead, "no active advisor covers "+lead.Location)
		return outcome, nil
	}
	if f.notifier == nil {
		f.recordFailure(ctx, lead, "forwarding is not configured")
		return outcome, nil
	}

	if err := f.notifier.Send(ctx, advisor.WhatsAppNumber, advisorMessage(lead, advisor)); err != nil {
		f.logger.Error("lead forwarding failed", "id", lead.ID, "advisor", advisor.Region, "error", err)
		f.recordFailure(ctx, lead, fmt.Sprintf("forward to %s failed: %v", advisor.Name, err))
		return outcome, nil
	}

	updated, err := f.store.MarkForwarded(ctx, lead.ID, advisor.Name, advisor.WhatsAppNumber)
	if err != nil {
		// The advisor has the lead; only our bookkeeping is behind.
		f.logger.Error("failed to record forwarding", "id", lead.ID, "error", err)
		updated = lead
	}

	f.logger.Info("lead forwarded", "id", lead.ID, "advisor", advisor.Region)
	if f.metrics != nil {
		f.metrics.LeadForwarded(true)
	}
	outcome.Lead = updated
	outcome.Forwarded = true
	outcome.Advisor = advisor.Name
	return outcome, nil
}

func (f *Forwarder) recordFailure(ctx context.Context, lead *leads.Lead, reason string) {
	if f.metrics != nil {
		f.metrics.LeadForwarded(false)
	}
	if _, err := f.store.AppendNote(ctx, lead.ID, leads.Note{
		Text: reason,
		Kind: leads.NoteKindError,
	}); err != nil {
		f.logger.Error("failed to note forwarding failure", "id", lead.ID, "error", err)
	}
}

// advisorMessage composes the WhatsApp summary an advisor receives.
func advisorMessage(lead *leads.Lead, advisor catalog.Advisor) string {
	var sb strings.Builder
	sb.WriteString("🆕 New Franchise Lead\n\n")
	fmt.Fprintf(&sb, "ID: %s\n", lead.ID)
	fmt.Fprintf(&sb, "Name: %s\n", lead.Name)
	fmt.Fprintf(&sb, "Phone: %s\n", lead.Phone)
	fmt.Fprintf(&sb, "Location: %s\n", lead.Location)
	fmt.Fprintf(&sb, "Email: %s\n", lead.Email)
	fmt.Fprintf(&sb, "Enquiry: %s\n", lead.EnquiryType)
	if lead.Details != "" {
		fmt.Fprintf(&sb, "Details: %s\n", lead.Details)
	}
	fmt.Fprintf(&sb, "\nAssigned to: %s", advisor.Name)
	return sb.String()
}
