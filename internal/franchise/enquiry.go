// Package franchise runs the franchise enquiry funnel: typing the enquiry,
// collecting the prospect's details over several messages, and handing the
// finished lead to a regional advisor.
package franchise

import "strings"

// Enquiry types the franchise team segments leads by.
const (
	EnquiryInvestment = "investment"
	EnquiryRevenue    = "revenue"
	EnquirySupport    = "support"
	EnquiryLocation   = "location"
	EnquiryGeneral    = "general"
)

// enquiryTerms maps message cues to enquiry types, checked in order so the
// more specific money questions win over location words.
var enquiryTerms = []struct {
	enquiry string
	terms   []string
}{
	{EnquiryInvestment, []string{"investment", "invest", "cost", "fee", "how much", "budget", "capital", "lakh", "lakhs"}},
	{EnquiryRevenue, []string{"revenue", "profit", "roi", "return", "earning", "income", "margin", "break even", "breakeven"}},
	{EnquirySupport, []string{"support", "training", "marketing", "help with", "staff", "operations"}},
	{EnquiryLocation, []string{"location", "area", "city", "where", "territory", "space", "sq ft", "sqft"}},
}

// TypeOf classifies a franchise message into an enquiry type. Unrecognized
// messages are general enquiries.
func TypeOf(message string) string {
	lowered := strings.ToLower(message)
	for _, e := range enquiryTerms {
		for _, term := range e.terms {
			if strings.Contains(lowered, term) {
				return e.enquiry
			}
		}
	}
	return EnquiryGeneral
}

// contactSignals are the phrases that opt a user into the lead-collection
// flow. A bare "franchise" never starts collection; the user has to ask to
// be contacted.
var contactSignals = []string{
	"call me", "contact me", "reach me", "get in touch",
	"i am interested", "i'm interested", "im interested", "interested in franchise",
	"talk to advisor", "speak to advisor", "connect me",
	"want to apply", "apply for franchise", "sign me up", "register me",
	"share my details", "take my details",
}

// WantsContact reports whether the message explicitly asks to be contacted
// about a franchise.
func WantsContact(message string) bool {
	lowered := strings.ToLower(message)
	for _, signal := range contactSignals {
		if strings.Contains(lowered, signal) {
			return true
		}
	}
	return false
}

// exitWords abandon the collection flow.
var exitWords = []string{"cancel", "stop", "exit", "quit", "nevermind", "never mind"}

// WantsExit reports whether the message abandons the collection flow.
func WantsExit(message string) bool {
	lowered := strings.ToLower(strings.TrimSpace(message))
	for _, word := range exitWords {
		if lowered == word {
			return true
		}
	}
	return false
}
