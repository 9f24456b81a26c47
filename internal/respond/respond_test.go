package respond

import (
	"strings"
	"testing"

	"github.com/mckingstown/salon-bot/internal/franchise"
	"github.com/mckingstown/salon-bot/internal/intent"
)

func TestForIntentNeverEmpty(t *testing.T) {
	names := []string{
		intent.IntentMenu, intent.IntentHaircut, intent.IntentBeard,
		intent.IntentFacial, intent.IntentSpa, intent.IntentColor,
		intent.IntentMassage, intent.IntentWedding, intent.IntentPrice,
		intent.IntentLocation, intent.IntentTiming, intent.IntentBooking,
		intent.IntentGreeting, intent.IntentThanks, intent.IntentBye,
		intent.IntentHelp, intent.IntentDefault, "something-unknown",
	}
	for _, name := range names {
		if reply := ForIntent(name, Params{}); strings.TrimSpace(reply) == "" {
			t.Errorf("ForIntent(%q) produced an empty reply", name)
		}
	}
}

func TestServiceCategoryShowsPrices(t *testing.T) {
	reply := ServiceCategory("haircut")
	if !strings.Contains(reply, "₹") {
		t.Error("service card should show rupee prices")
	}
	if ServiceCategory("unknown") != Menu() {
		t.Error("unknown category should fall back to the menu")
	}
}

func TestLocationsWithCity(t *testing.T) {
	reply := Locations("Chennai")
	if !strings.Contains(reply, "Chennai") || !strings.Contains(reply, "ANNA NAGAR") {
		t.Errorf("expected Chennai outlets, got:\n%s", reply)
	}

	missing := Locations("Shillong")
	if !strings.Contains(missing, "don't have an outlet") {
		t.Errorf("expected apology for uncovered city, got:\n%s", missing)
	}
	if !strings.Contains(missing, "franchise") {
		t.Error("uncovered city reply should pitch the franchise")
	}
}

func TestGreetingUsesProfileName(t *testing.T) {
	if !strings.Contains(Greeting("Asha"), "Hello Asha") {
		t.Error("greeting should address the user by name")
	}
	if !strings.Contains(Greeting(""), "Hello!") {
		t.Error("greeting without a name should still greet")
	}
}

func TestBookingEchoesSlot(t *testing.T) {
	reply := Booking(Params{Day: "saturday", Time: "6pm", Location: "Chennai"})
	if !strings.Contains(reply, "saturday 6pm") || !strings.Contains(reply, "Chennai") {
		t.Errorf("booking reply should echo the detected slot and city:\n%s", reply)
	}
}

func TestFranchiseVariants(t *testing.T) {
	tests := []struct {
		enquiry string
		marker  string
	}{
		{franchise.EnquiryInvestment, "Franchise fee"},
		{franchise.EnquiryRevenue, "Profit margin"},
		{franchise.EnquirySupport, "training"},
		{franchise.EnquiryLocation, "Territories"},
		{franchise.EnquiryGeneral, "Investment"},
	}
	for _, tt := range tests {
		reply := Franchise(tt.enquiry)
		if !strings.Contains(reply, tt.marker) {
			t.Errorf("Franchise(%q) missing %q:\n%s", tt.enquiry, tt.marker, reply)
		}
		if !strings.Contains(reply, "I'm interested") {
			t.Errorf("Franchise(%q) must end with the contact prompt", tt.enquiry)
		}
	}
}
