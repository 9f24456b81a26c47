// Package respond renders WhatsApp reply texts for resolved intents. Every
// function is pure over the catalog data and never fails: whatever happened
// upstream, the user always gets a sendable message.
package respond

import (
	"fmt"
	"strings"

	"github.com/mckingstown/salon-bot/internal/catalog"
	"github.com/mckingstown/salon-bot/internal/intent"
)

// Params carries the optional extracted details a reply can be upgraded
// with.
type Params struct {
	ProfileName string
	Location    string
	Day         string
	Time        string
}

// ForIntent renders the reply for a deterministic intent. Unknown intents
// get the default help text.
func ForIntent(name string, p Params) string {
	switch name {
	case intent.IntentMenu:
		return Menu()
	case intent.IntentHaircut:
		return ServiceCategory("haircut")
	case intent.IntentBeard:
		return ServiceCategory("beard")
	case intent.IntentFacial:
		return ServiceCategory("facial")
	case intent.IntentSpa:
		return ServiceCategory("spa")
	case intent.IntentColor:
		return ServiceCategory("color")
	case intent.IntentMassage:
		return ServiceCategory("massage")
	case intent.IntentWedding, intent.IntentGroom:
		return ServiceCategory("wedding")
	case intent.IntentPrice:
		return PriceList()
	case intent.IntentLocation:
		return Locations(p.Location)
	case intent.IntentTiming:
		return Timings()
	case intent.IntentBooking:
		return Booking(p)
	case intent.IntentGreeting:
		return Greeting(p.ProfileName)
	case intent.IntentThanks:
		return Thanks()
	case intent.IntentBye:
		return Bye()
	case intent.IntentHelp:
		return Help()
	default:
		return Default()
	}
}

// Menu is the top-level service menu.
func Menu() string {
	var sb strings.Builder
	sb.WriteString("💈 *McKingstown Men's Salon* 💈\n\n")
	sb.WriteString("What can I help you with?\n\n")
	for _, cat := range catalog.Services() {
		fmt.Fprintf(&sb, "• %s\n", cat.Title)
	}
	sb.WriteString("\nAlso ask me about:\n")
	sb.WriteString("📍 Outlet locations\n")
	sb.WriteString("🕐 Timings\n")
	sb.WriteString("💼 Franchise opportunities\n\n")
	sb.WriteString("Just type what you need, e.g. 'haircut prices' or 'outlets in Chennai'.")
	return sb.String()
}

// ServiceCategory renders one category's price card.
func ServiceCategory(key string) string {
	cat, ok := catalog.ServicesByKey(key)
	if !ok {
		return Menu()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", cat.Title)
	if cat.Subtitle != "" {
		fmt.Fprintf(&sb, "_%s_\n", cat.Subtitle)
	}
	sb.WriteString("\n")
	for _, item := range cat.Items {
		if item.Price > 0 {
			fmt.Fprintf(&sb, "• %s - ₹%d\n", item.Name, item.Price)
		} else {
			// Unpriced items are availability notes.
			fmt.Fprintf(&sb, "• %s\n", item.Name)
		}
		if item.Description != "" {
			fmt.Fprintf(&sb, "  _%s_\n", item.Description)
		}
	}
	if len(cat.AddOns) > 0 {
		sb.WriteString("\nAdd-ons:\n")
		for _, item := range cat.AddOns {
			fmt.Fprintf(&sb, "• %s - ₹%d\n", item.Name, item.Price)
		}
	}
	sb.WriteString("\nType 'book' for an appointment or 'menu' for all services.")
	return sb.String()
}

// PriceList is a compact all-services price summary.
func PriceList() string {
	var sb strings.Builder
	sb.WriteString("💰 *Price List*\n\n")
	for _, cat := range catalog.Services() {
		low, high := 0, 0
		for _, item := range cat.Items {
			if item.Price == 0 {
				continue
			}
			if low == 0 || item.Price < low {
				low = item.Price
			}
			if item.Price > high {
				high = item.Price
			}
		}
		if low == 0 {
			continue
		}
		if low == high {
			fmt.Fprintf(&sb, "• %s: ₹%d\n", cat.Title, low)
		} else {
			fmt.Fprintf(&sb, "• %s: ₹%d - ₹%d\n", cat.Title, low, high)
		}
	}
	sb.WriteString("\nAsk about any service for the full breakdown, e.g. 'haircut'.")
	return sb.String()
}

// Locations lists outlets; with a detected city it narrows to that city.
func Locations(city string) string {
	if city != "" {
		if outlets := catalog.OutletsByCity(city); len(outlets) > 0 {
			var sb strings.Builder
			fmt.Fprintf(&sb, "📍 *McKingstown in %s*\n\n", city)
			for _, o := range outlets {
				fmt.Fprintf(&sb, "• %s\n  %s\n", o.Name, o.Address)
			}
			sb.WriteString("\n🕐 Open 10 AM - 9 PM, all days.")
			return sb.String()
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "We don't have an outlet in %s yet. 😔\n\n", city)
		fmt.Fprintf(&sb, "We're in %d+ locations including:\n%s\n\n",
			catalog.TotalOutlets, strings.Join(firstN(catalog.AllCities(), 10), ", "))
		sb.WriteString("Interested in bringing McKingstown to your city? Ask about our franchise! 💼")
		return sb.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📍 *%d+ outlets across India & Dubai*\n\n", catalog.TotalOutlets)
	sb.WriteString("Major cities:\n")
	for _, c := range firstN(catalog.AllCities(), 12) {
		fmt.Fprintf(&sb, "• %s\n", c)
	}
	sb.WriteString("\nTell me your city and I'll list the nearest outlets.")
	return sb.String()
}

// Timings is the opening-hours card.
func Timings() string {
	return "🕐 *Timings*\n\n" +
		"All outlets: 10:00 AM - 9:00 PM\n" +
		"Open all days, including Sundays and most holidays.\n\n" +
		"Walk-ins welcome, but type 'book' to skip the queue!"
}

// Booking acknowledges an appointment request, echoing any detected slot.
func Booking(p Params) string {
	var sb strings.Builder
	sb.WriteString("📅 *Book an Appointment*\n\n")
	if p.Day != "" || p.Time != "" {
		slot := strings.TrimSpace(p.Day + " " + p.Time)
		fmt.Fprintf(&sb, "Noted: %s. ", slot)
	}
	if p.Location != "" {
		fmt.Fprintf(&sb, "For our %s outlets, call", p.Location)
	} else {
		sb.WriteString("Call your nearest outlet")
	}
	sb.WriteString(" or visit www.mckingstown.com/book to confirm your slot.\n\n")
	sb.WriteString("Which city are you in? I can share the outlet contact.")
	return sb.String()
}

// Greeting welcomes the user, by name when WhatsApp shares one.
func Greeting(profileName string) string {
	hello := "Hello! 👋"
	if profileName != "" {
		hello = fmt.Sprintf("Hello %s! 👋", profileName)
	}
	return hello + " Welcome to *McKingstown Men's Salon*.\n\n" +
		"I can help with services, prices, outlets, timings and franchise enquiries.\n" +
		"Type 'menu' to see everything."
}

// Thanks acknowledges gratitude.
func Thanks() string {
	return "You're welcome! 😊 Anything else I can help with? Type 'menu' to see all options."
}

// Bye closes the conversation.
func Bye() string {
	return "Thank you for chatting with McKingstown! 💈 See you soon. 👋"
}

// Help explains what the bot can do.
func Help() string {
	return "Here's what I can do:\n\n" +
		"• 'menu' - all services and prices\n" +
		"• 'haircut', 'beard', 'facial'... - category prices\n" +
		"• 'outlets in <city>' - locations near you\n" +
		"• 'timings' - opening hours\n" +
		"• 'franchise' - own a McKingstown\n" +
		"• 'book' - appointments"
}

// Default is the last-resort reply when nothing else matched.
func Default() string {
	return "I didn't quite get that. 🤔\n\n" +
		"Try 'menu' for services and prices, or ask about outlets, timings or franchise opportunities."
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
