package franchise

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mckingstown/salon-bot/internal/catalog"
	"github.com/mckingstown/salon-bot/internal/leads"
	"github.com/mckingstown/salon-bot/pkg/logging"
)

type recordingNotifier struct {
	sent []sentMessage
	err  error
}

type sentMessage struct {
	to   string
	body string
}

func (n *recordingNotifier) Send(_ context.Context, to, body string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMessage{to: to, body: body})
	return nil
}

func testDirectory() *catalog.Directory {
	return catalog.NewDirectory([]catalog.Advisor{
		{
			Region:         "southIndia",
			Name:           "South India Advisor",
			WhatsAppNumber: "+918608334398",
			CoverageAreas:  []string{"Tamil Nadu", "Chennai", "Madurai"},
			Active:         true,
		},
	})
}

func enquiryRequest() *leads.CreateLeadRequest {
	return &leads.CreateLeadRequest{
		Phone:       "+919876543210",
		Name:        "Asha Rao",
		Location:    "Chennai",
		Email:       "asha@example.com",
		EnquiryType: EnquiryInvestment,
	}
}

func TestSubmitForwardsToAdvisor(t *testing.T) {
	store := leads.NewMemoryStore()
	notifier := &recordingNotifier{}
	fwd := NewForwarder(store, testDirectory(), notifier, logging.New("error"), nil)

	outcome, err := fwd.Submit(context.Background(), enquiryRequest())
	require.NoError(t, err)
	require.True(t, outcome.Forwarded)
	assert.Equal(t, "South India Advisor", outcome.Advisor)
	assert.Equal(t, leads.StatusForwarded, outcome.Lead.Status)
	require.NotNil(t, outcome.Lead.ForwardedAt)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "+918608334398", notifier.sent[0].to)
	assert.Contains(t, notifier.sent[0].body, "Asha Rao")
	assert.Contains(t, notifier.sent[0].body, outcome.Lead.ID)
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	store := leads.NewMemoryStore()
	notifier := &recordingNotifier{err: errors.New("twilio 500")}
	fwd := NewForwarder(store, testDirectory(), notifier, logging.New("error"), nil)

	outcome, err := fwd.Submit(context.Background(), enquiryRequest())
	require.NoError(t, err, "a notifier failure must not fail the submission")
	assert.False(t, outcome.Forwarded)

	// The lead is durable, stays new, and carries an error note.
	stored, err := store.GetByID(context.Background(), outcome.Lead.ID)
	require.NoError(t, err)
	assert.Equal(t, leads.StatusNew, stored.Status)
	require.Len(t, stored.Notes, 1)
	assert.Equal(t, leads.NoteKindError, stored.Notes[0].Kind)
	assert.Contains(t, stored.Notes[0].Text, "failed")
}

func TestSubmitWithoutAdvisorCoverage(t *testing.T) {
	store := leads.NewMemoryStore()
	notifier := &recordingNotifier{}
	fwd := NewForwarder(store, testDirectory(), notifier, logging.New("error"), nil)

	req := enquiryRequest()
	req.Location = "Shillong"
	outcome, err := fwd.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, outcome.Forwarded)
	assert.Empty(t, notifier.sent)

	stored, _ := store.GetByID(context.Background(), outcome.Lead.ID)
	assert.Equal(t, leads.StatusNew, stored.Status)
	require.Len(t, stored.Notes, 1)
	assert.Contains(t, stored.Notes[0].Text, "no active advisor")
}

func TestSubmitStoreFailureIsLoud(t *testing.T) {
	store := leads.NewMemoryStore()
	fwd := NewForwarder(store, testDirectory(), &recordingNotifier{}, logging.New("error"), nil)

	_, err := fwd.Submit(context.Background(), &leads.CreateLeadRequest{Phone: "+91"})
	require.Error(t, err)
	assert.ErrorIs(t, err, leads.ErrInvalidName)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"how much investment is needed", EnquiryInvestment},
		{"what is the expected ROI", EnquiryRevenue},
		{"do you provide staff training", EnquirySupport},
		{"which areas are open for franchise", EnquiryLocation},
		{"tell me about the franchise", EnquiryGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeOf(tt.message), "TypeOf(%q)", tt.message)
	}
}

func TestWantsContact(t *testing.T) {
	assert.True(t, WantsContact("I'm interested, please call me"))
	assert.True(t, WantsContact("connect me with your advisor"))
	assert.False(t, WantsContact("franchise"), "a bare franchise keyword never opts in")
	assert.False(t, WantsContact("what is the franchise fee"))
}
