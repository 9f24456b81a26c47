package catalog

import "strings"

// Advisor is a regional franchise advisor directory entry. Advisors with no
// WhatsApp number or Active=false are directory placeholders and never
// receive forwarded leads.
type Advisor struct {
	Region         string
	Name           string
	WhatsAppNumber string
	CoverageAreas  []string
	Active         bool
}

// CatchAllArea marks an advisor that covers every region not claimed by a
// more specific entry.
const CatchAllArea = "*"

// Directory resolves enquiry locations to advisors.
type Directory struct {
	advisors []Advisor
}

// NewDirectory builds a directory from explicit entries.
func NewDirectory(advisors []Advisor) *Directory {
	return &Directory{advisors: advisors}
}

// DefaultDirectory returns the configured regional advisor list.
func DefaultDirectory() *Directory {
	return NewDirectory([]Advisor{
		{
			Region:         "southIndia",
			Name:           "Regional Franchise Advisor - South India",
			WhatsAppNumber: "+918608334398",
			CoverageAreas: []string{
				"Tamil Nadu", "Kerala", "Karnataka", "Andhra Pradesh", "Telangana", "Puducherry",
				"Chennai", "Bangalore", "Hyderabad", "Coimbatore", "Madurai", "Kochi", "Mysore",
				"Vijayawada", "Visakhapatnam", "Thiruvananthapuram", "Salem", "Trichy",
			},
			Active: true,
		},
		{
			Region: "westIndia",
			Name:   "Regional Franchise Advisor - West India",
			CoverageAreas: []string{
				"Gujarat", "Maharashtra", "Goa", "Rajasthan",
				"Mumbai", "Ahmedabad", "Surat", "Pune", "Nagpur", "Jaipur", "Nashik",
			},
		},
		{
			Region: "northIndia",
			Name:   "Regional Franchise Advisor - North India",
			CoverageAreas: []string{
				"Delhi", "Haryana", "Punjab", "Uttar Pradesh", "Uttarakhand", "Himachal Pradesh",
				"New Delhi", "Noida", "Gurgaon", "Chandigarh", "Lucknow",
			},
		},
		{
			Region: "eastIndia",
			Name:   "Regional Franchise Advisor - East India",
			CoverageAreas: []string{
				"West Bengal", "Bihar", "Odisha", "Jharkhand", "Assam",
				"Kolkata", "Patna", "Bhubaneswar", "Guwahati",
			},
		},
		{
			Region:        "dubai",
			Name:          "Franchise Advisor - Dubai",
			CoverageAreas: []string{"Dubai", "UAE", "Middle East", "Gulf"},
		},
		{
			Region:        "central",
			Name:          "Central Franchise Office",
			CoverageAreas: []string{CatchAllArea},
		},
	})
}

// ByLocation finds the advisor covering a location. Coverage matching is a
// case-insensitive substring test in either direction, so "chennai city"
// matches the "Chennai" area and "tn" does not accidentally match. Specific
// regions win over the catch-all; an inactive or number-less advisor never
// matches. Returns false when no active advisor covers the location.
func (d *Directory) ByLocation(location string) (Advisor, bool) {
	needle := strings.ToLower(strings.TrimSpace(location))
	if needle == "" {
		return d.catchAll()
	}

	for _, adv := range d.advisors {
		if !adv.reachable() {
			continue
		}
		for _, area := range adv.CoverageAreas {
			if area == CatchAllArea {
				continue
			}
			lowered := strings.ToLower(area)
			if strings.Contains(needle, lowered) || strings.Contains(lowered, needle) {
				return adv, true
			}
		}
	}
	return d.catchAll()
}

func (d *Directory) catchAll() (Advisor, bool) {
	for _, adv := range d.advisors {
		if !adv.reachable() {
			continue
		}
		for _, area := range adv.CoverageAreas {
			if area == CatchAllArea {
				return adv, true
			}
		}
	}
	return Advisor{}, false
}

// ActiveAdvisors returns every advisor that can receive forwarded leads.
func (d *Directory) ActiveAdvisors() []Advisor {
	var active []Advisor
	for _, adv := range d.advisors {
		if adv.reachable() {
			active = append(active, adv)
		}
	}
	return active
}

// HasActive reports whether any advisor can receive forwarded leads.
func (d *Directory) HasActive() bool {
	return len(d.ActiveAdvisors()) > 0
}

func (a Advisor) reachable() bool {
	return a.Active && a.WhatsAppNumber != ""
}
