package respond

import (
	"fmt"
	"strings"

	"github.com/mckingstown/salon-bot/internal/catalog"
	"github.com/mckingstown/salon-bot/internal/franchise"
)

// Franchise renders the franchise answer for an enquiry type. Every variant
// ends with the contact prompt that can opt the user into lead collection.
func Franchise(enquiryType string) string {
	switch enquiryType {
	case franchise.EnquiryInvestment:
		return franchiseInvestment()
	case franchise.EnquiryRevenue:
		return franchiseRevenue()
	case franchise.EnquirySupport:
		return franchiseSupport()
	case franchise.EnquiryLocation:
		return franchiseLocations()
	default:
		return franchiseOverview()
	}
}

func franchiseOverview() string {
	eco := catalog.Economics()
	var sb strings.Builder
	sb.WriteString("💼 *McKingstown Franchise*\n\n")
	fmt.Fprintf(&sb, "Join %d+ successful outlets across India & Dubai!\n\n", catalog.TotalOutlets)
	fmt.Fprintf(&sb, "💰 Investment: ₹%d lakhs (all inclusive)\n", eco.TotalInvestmentLakhs)
	fmt.Fprintf(&sb, "📈 ROI: %d-%d months\n", eco.ROIMonthsMin, eco.ROIMonthsMax)
	fmt.Fprintf(&sb, "🏪 Space: %d-%d sq ft\n\n", eco.AreaSqFtMin, eco.AreaSqFtMax)
	sb.WriteString("Ask me about 'investment', 'returns' or 'support' for details.\n\n")
	sb.WriteString(contactPrompt())
	return sb.String()
}

func franchiseInvestment() string {
	eco := catalog.Economics()
	var sb strings.Builder
	sb.WriteString("💰 *Franchise Investment*\n\n")
	fmt.Fprintf(&sb, "Total: ₹%d lakhs\n\n", eco.TotalInvestmentLakhs)
	fmt.Fprintf(&sb, "• Franchise fee: ₹%d lakhs\n", eco.FranchiseFeeLakhs)
	fmt.Fprintf(&sb, "• Interiors & setup: ₹%d lakhs\n", eco.InteriorSetupLakhs)
	fmt.Fprintf(&sb, "• Equipment: ₹%d lakhs\n", eco.EquipmentLakhs)
	fmt.Fprintf(&sb, "• Working capital: ₹%d lakhs\n\n", eco.WorkingCapitalLakhs)
	fmt.Fprintf(&sb, "Space needed: %d-%d sq ft | Staff: %d-%d\n\n",
		eco.AreaSqFtMin, eco.AreaSqFtMax, eco.StaffMin, eco.StaffMax)
	sb.WriteString(contactPrompt())
	return sb.String()
}

func franchiseRevenue() string {
	eco := catalog.Economics()
	var sb strings.Builder
	sb.WriteString("📈 *Franchise Returns*\n\n")
	fmt.Fprintf(&sb, "• Expected annual revenue: ₹%d-%d lakhs\n", eco.RevenueLakhsMin, eco.RevenueLakhsMax)
	fmt.Fprintf(&sb, "• Profit margin: %d-%d%%\n", eco.ProfitMarginMinPct, eco.ProfitMarginMaxPct)
	fmt.Fprintf(&sb, "• ROI period: %d-%d months\n\n", eco.ROIMonthsMin, eco.ROIMonthsMax)
	sb.WriteString("Numbers based on the performance of our existing outlets.\n\n")
	sb.WriteString(contactPrompt())
	return sb.String()
}

func franchiseSupport() string {
	eco := catalog.Economics()
	var sb strings.Builder
	sb.WriteString("🤝 *Franchise Support*\n\nWe set you up for success:\n\n")
	for _, item := range eco.SupportIncludes {
		fmt.Fprintf(&sb, "• %s\n", item)
	}
	sb.WriteString("\n")
	sb.WriteString(contactPrompt())
	return sb.String()
}

func franchiseLocations() string {
	var sb strings.Builder
	sb.WriteString("📍 *Franchise Territories*\n\n")
	sb.WriteString("We're expanding across India and the Gulf. Priority markets:\n\n")
	sb.WriteString("• Tamil Nadu, Kerala, Karnataka\n")
	sb.WriteString("• Gujarat, Maharashtra\n")
	sb.WriteString("• Delhi NCR\n")
	sb.WriteString("• Dubai & UAE\n\n")
	sb.WriteString("Other cities are open too, tell us yours!\n\n")
	sb.WriteString(contactPrompt())
	return sb.String()
}

func contactPrompt() string {
	eco := catalog.Economics()
	return fmt.Sprintf("Say *'I'm interested'* and our regional advisor will call you.\n"+
		"📞 %s | ✉️ %s", eco.TollFree, eco.Email)
}
