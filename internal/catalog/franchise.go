package catalog

// FranchiseEconomics carries the investment terms quoted to prospective
// franchisees. Amounts are in lakhs of rupees unless noted.
type FranchiseEconomics struct {
	TotalInvestmentLakhs int
	FranchiseFeeLakhs    int
	InteriorSetupLakhs   int
	EquipmentLakhs       int
	WorkingCapitalLakhs  int
	ROIMonthsMin         int
	ROIMonthsMax         int
	RevenueLakhsMin      int
	RevenueLakhsMax      int
	ProfitMarginMinPct   int
	ProfitMarginMaxPct   int
	AreaSqFtMin          int
	AreaSqFtMax          int
	StaffMin             int
	StaffMax             int
	SupportIncludes      []string
	TollFree             string
	Email                string
	Website              string
}

var franchiseEconomics = FranchiseEconomics{
	TotalInvestmentLakhs: 19,
	FranchiseFeeLakhs:    5,
	InteriorSetupLakhs:   8,
	EquipmentLakhs:       3,
	WorkingCapitalLakhs:  3,
	ROIMonthsMin:         18,
	ROIMonthsMax:         24,
	RevenueLakhsMin:      40,
	RevenueLakhsMax:      50,
	ProfitMarginMinPct:   30,
	ProfitMarginMaxPct:   35,
	AreaSqFtMin:          400,
	AreaSqFtMax:          600,
	StaffMin:             3,
	StaffMax:             5,
	SupportIncludes: []string{
		"Complete staff training",
		"Marketing and launch support",
		"Operations playbook",
		"Branded products and equipment sourcing",
	},
	TollFree: "1800-XXX-XXXX",
	Email:    "franchise@mckingstown.com",
	Website:  "www.mckingstown.com",
}

// Economics returns the franchise investment terms.
func Economics() FranchiseEconomics {
	return franchiseEconomics
}
