package catalog

// ServiceItem is a single priced line on the salon menu. Items without a
// price are availability notes (e.g. selective-outlet services).
type ServiceItem struct {
	Name        string
	Price       int
	Description string
}

// ServiceCategory groups menu items under a printable title.
type ServiceCategory struct {
	Key      string
	Title    string
	Subtitle string
	Items    []ServiceItem
	AddOns   []ServiceItem
}

// serviceCategories is declared in menu order; formatting code relies on
// this ordering for the complete-menu listing.
var serviceCategories = []ServiceCategory{
	{
		Key:   "haircut",
		Title: "HAIRCUT SERVICES",
		Items: []ServiceItem{
			{Name: "Haircut (Neat & Clean)", Price: 125},
			{Name: "Taper Haircut", Price: 150, Description: "Casual and Professional"},
			{Name: "Fade Haircut", Price: 175, Description: "Blends to Skin"},
			{Name: "Mullet Haircut", Price: 200, Description: "Short Front, Long Back"},
			{Name: "New Look", Price: 200, Description: "Change of Style"},
			{Name: "The Bald", Price: 200, Description: "Head Shave"},
			{Name: "Little Champ", Price: 75, Description: "Any Haircut - Boys Below 7 Years"},
		},
		AddOns: []ServiceItem{
			{Name: "Wash & Style", Price: 100},
		},
	},
	{
		Key:   "beard",
		Title: "BEARD SERVICES",
		Items: []ServiceItem{
			{Name: "Beard Trim", Price: 40},
			{Name: "Zero Trim", Price: 50},
			{Name: "Regular Shave", Price: 75},
			{Name: "Beard Design", Price: 400, Description: "French, Shaping, Stubble"},
			{Name: "Hot Towel Shave", Description: "Immaculate Shave with soothing hot towel - Selective Outlets*"},
		},
	},
	{
		Key:   "spa",
		Title: "HAIR SPA (Hair & Scalp Treatment)",
		Items: []ServiceItem{
			{Name: "Dry / Repair", Price: 400},
			{Name: "Dandruff / Hairfall", Price: 800},
			{Name: "Nourishing Protein Treatment", Price: 800},
			{Name: "Detox (With Oil Shots)", Price: 1000},
		},
	},
	{
		Key:   "color",
		Title: "COLOUR SERVICES",
		Items: []ServiceItem{
			{Name: "Moustache", Price: 100},
			{Name: "Beard", Price: 150},
			{Name: "Hair Dye / Own Colour Application", Price: 200},
			{Name: "Global Hair", Price: 250},
			{Name: "Global Hair (Upto Neck)", Price: 350},
			{Name: "Global Hair (Shoulder)", Price: 600},
			{Name: "Global Hair (Below Shoulder)", Price: 800},
			{Name: "Per Streak", Price: 200},
			{Name: "Highlights", Price: 300},
			{Name: "Fashion Colour", Price: 700},
		},
		AddOns: []ServiceItem{
			{Name: "Pre-Lightening", Price: 500},
		},
	},
	{
		Key:      "facial",
		Title:    "FACIALS",
		Subtitle: "No Parabens | No Sulphates | Vegan | Cruelty Free",
		Items: []ServiceItem{
			{Name: "Gold", Price: 700},
			{Name: "Diamond", Price: 800},
			{Name: "Glo Vite", Price: 900},
			{Name: "Tan Clear", Price: 1000},
			{Name: "Oxy Radiance", Price: 1200},
			{Name: "Hydra Boost", Price: 1500},
			{Name: "Sensi Fusion", Price: 1800},
			{Name: "De-Aging", Price: 2000},
		},
		AddOns: []ServiceItem{
			{Name: "De-Tan", Price: 200},
			{Name: "Gel Peel Off Mask", Price: 600},
		},
	},
	{
		Key:   "massage",
		Title: "OIL MASSAGE",
		Items: []ServiceItem{
			{Name: "Head Oil Massage (20 mins)", Price: 200, Description: "Almond/Coconut/Gingelly/Navratna/Olive"},
			{Name: "Signature Head Oil Massage (20 mins)", Price: 350, Description: "Onion Seed/Jojoba Beads"},
		},
	},
	{
		Key:   "wedding",
		Title: "WEDDING DEALS",
		Items: []ServiceItem{
			{Name: "Wedding Package 1", Price: 2999, Description: "Any Haircut + Shave or Beard Design + Full Arms De-Tan + Hair Spa (Dry/Repair) or Global Hair Color* + Vitamin Fix Facial"},
			{Name: "Wedding Package 2", Price: 3999, Description: "Any Haircut + Shave or Beard Design + Full Arms De-Tan + Nourishing Protein Treatment + Shine Lume Facial"},
			{Name: "Wedding Package 3", Price: 4999, Description: "Any Haircut + Shave or Beard Design + Full Arms De-Tan + Detox Hair Spa (With Oil Shots) + Crystal Bright Facial"},
		},
	},
	{
		Key:   "groom",
		Title: "GROOM (Make-up & Hair Styling)",
		Items: []ServiceItem{
			{Name: "Classic", Price: 2000, Description: "Selective Outlets*"},
			{Name: "High Definition", Price: 3000, Description: "Selective Outlets*"},
		},
	},
}

// Services returns every service category in menu order.
func Services() []ServiceCategory {
	return serviceCategories
}

// ServicesByKey returns the category for a keyword key ("haircut", "beard", ...).
func ServicesByKey(key string) (ServiceCategory, bool) {
	for _, cat := range serviceCategories {
		if cat.Key == key {
			return cat, true
		}
	}
	return ServiceCategory{}, false
}
