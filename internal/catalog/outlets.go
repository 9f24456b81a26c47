package catalog

import (
	"sort"
	"strings"
)

// Outlet is one salon location.
type Outlet struct {
	ID      int
	Name    string
	City    string
	State   string
	Address string
	Phone   string
	Kind    string // "", "Brand Outlet", "International"
	Opened  string
}

// outlets is a representative slice of the chain directory. The full list
// tops 130 locations; dashboards and responses only need city coverage and
// a handful of addresses per city.
var outlets = []Outlet{
	{ID: 1, Name: "ANNA NAGAR (Brand Outlet)", City: "Chennai", State: "Tamil Nadu", Address: "1734, 18th Main Rd, Bharathi Nagar, I Block, Anna Nagar, Chennai, Tamil Nadu 600040", Phone: "8939900567", Kind: "Brand Outlet"},
	{ID: 2, Name: "TAMBARAM", City: "Chennai", State: "Tamil Nadu", Address: "No:149, Velachery Road, East Tambaram, Tambaram, Chennai, Tamil Nadu - 600059", Phone: "9884029730", Opened: "27-09-2021"},
	{ID: 3, Name: "KILPAUK", City: "Chennai", State: "Tamil Nadu", Address: "No: 46/46D, Old No: 19, Barnaby Road, Kilpauk, Chennai, Tamil Nadu - 600010", Phone: "9363077774", Opened: "20-12-2021"},
	{ID: 4, Name: "ADYAR (Brand Outlet)", City: "Chennai", State: "Tamil Nadu", Address: "No: 18/16, Second Main Road, near Nilgiris Super Market, Kasturba Nagar, Adyar, Chennai, Tamil Nadu - 600020", Phone: "9840323136", Kind: "Brand Outlet", Opened: "15-07-2022"},
	{ID: 5, Name: "VELACHERY", City: "Chennai", State: "Tamil Nadu", Address: "New No. 11, Old No. 80 B, CSI Church Gate Road, Annai Indira Nagar, Velachery, Chennai - 600042", Phone: "7358744788", Opened: "10-06-2024"},
	{ID: 6, Name: "T NAGAR", City: "Chennai", State: "Tamil Nadu", Address: "Unit No. A, Ground Floor of No. 2 Rajan street, Off Bazullah Road, Chennai, Tamil Nadu- 600017", Phone: "9360901223", Opened: "11-09-2024"},
	{ID: 7, Name: "P N PUDUR", City: "Coimbatore", State: "Tamil Nadu", Address: "No.237/ 184, Marudhamalai Main Road, P.N Pudur, Coimbatore, Tamil Nadu - 641041", Phone: "9035903540", Opened: "07-11-2022"},
	{ID: 8, Name: "SAIBABA COIMBATORE", City: "Coimbatore", State: "Tamil Nadu", Address: "No. 3, Bharathi Park Road, 8th Cross, Saibaba Colony, Coimbatore - 641011", Phone: "7530053540", Opened: "11-06-2024"},
	{ID: 9, Name: "MADURAI", City: "Madurai", State: "Tamil Nadu", Address: "Shenbakaam Towers, No: 9644/1, Sourashtrapuram, Anna Nagar, Madurai, 625 020", Phone: "9043996595", Opened: "15-12-2023"},
	{ID: 10, Name: "SALEM", City: "Salem", State: "Tamil Nadu", Address: "No. 48/3, Rajaji Road, Peramanur, Salem, Tamil Nadu- 636007", Phone: "7200560396", Opened: "03-07-2024"},
	{ID: 11, Name: "TRICHY 1ST", City: "Trichy", State: "Tamil Nadu", Address: "No 20/3, Ground Floor (Maya Enclave), Vayalur Main Road, Trichy, Tamil Nadu -620017", Phone: "8300139777", Opened: "26-02-2025"},
	{ID: 12, Name: "ERODE", City: "Erode", State: "Tamil Nadu", Address: "H-27, E.V.N Road, Surampatti Naal Road, Erode- 638 009", Phone: "9944711266", Opened: "22-08-2024"},
	{ID: 13, Name: "TIRUPUR", City: "Tirupur", State: "Tamil Nadu", Address: "209/2, AKP Complex, Gandhi Road, Anupparpalayam Pudur, Tirupur - 641652", Phone: "9500595378", Opened: "28-05-2024"},
	{ID: 14, Name: "KANCHIPURAM", City: "Kanchipuram", State: "Tamil Nadu", Address: "Old 117 New 22 Pillai Street Kanchipuram Chennai Tamilnadu 631501", Phone: "9500274212", Opened: "18-04-2025"},
	{ID: 15, Name: "TRIRUPATI", City: "Tirupati", State: "Andhra Pradesh", Address: "City Center Complex, 18-1-421, Beside Anjineyaswami Temple, Bhavani Nagar, Tirupati - 517501", Phone: "9006662229", Opened: "22-01-2024"},
	{ID: 16, Name: "VIDYARANYAPURA (Brand Outlet)", City: "Bangalore", State: "Karnataka", Address: "No: 465, 12th Main, 3 Block, HMT Layout, Vidyaranyapura, Bangalore - 560 097", Phone: "9962999975", Kind: "Brand Outlet", Opened: "23-10-2023"},
	{ID: 17, Name: "NRI LAYOUT BANGALORE", City: "Bangalore", State: "Karnataka", Address: "New No 32/9 Old No 9/1 Ground Floor KVN Complex, NRI Layout, Ramamurthy Nagar, Bengaluru, Karnataka 560016", Phone: "8431392879", Opened: "13-02-2025"},
	{ID: 18, Name: "ADAJAN SURAT", City: "Surat", State: "Gujarat", Address: "B-19, Monarch, NR Kalpvrux Garden, Gouravpath Road, Pal Adajan, Surat - 395009", Phone: "8866839373", Opened: "19-03-2024"},
	{ID: 19, Name: "VESU SURAT", City: "Surat", State: "Gujarat", Address: "GF- 12, Aakash Retail, Opp Square NM Mavani Road, Vesu, Magdalla, Surat, Gujarat 395007", Phone: "9998659393", Opened: "12-08-2024"},
	{ID: 20, Name: "MOTERA", City: "Ahmedabad", State: "Gujarat", Address: "Shop No. 17 A, Central By Sangath IPL, Next To PVR Cinemas, Motera, Ahmedabad-380005", Phone: "9610579898", Opened: "04-10-2024"},
	{ID: 21, Name: "KUDASAN", City: "Gandhinagar", State: "Gujarat", Address: "No 8 Keshav Aradhyam Kudasan Gandhinagar Gujarat 382421", Phone: "9624579898", Opened: "06-04-2025"},
	{ID: 22, Name: "PUDUCHERRY", City: "Puducherry", State: "Puducherry", Address: "Door No. 350, Ground floor, Villianur Main Rd, Nellithope, Puducherry 605005", Phone: "7440744040", Opened: "05-08-2024"},
	{ID: 23, Name: "KARAIKAL", City: "Karaikal", State: "Puducherry", Address: "No: 11, Deitha Street, Karaikal, Pondicherry - 609602", Phone: "9944757404", Opened: "28-02-2024"},
	{ID: 24, Name: "DUBAI AL QUSAIS", City: "Dubai", State: "UAE", Address: "Mohammad Abdullah Bindemaithan Building, Building No. 11, Shop No. 4, Al Qusais Industrial 2, Damascus Street", Phone: "971569670341", Kind: "International", Opened: "08-01-2025"},
}

// TotalOutlets is the chain-wide outlet count quoted in responses; it is
// larger than the directory slice above.
const TotalOutlets = 134

// Outlets returns the outlet directory.
func Outlets() []Outlet {
	return outlets
}

// OutletsByCity returns every outlet whose city matches (case-insensitive).
func OutletsByCity(city string) []Outlet {
	needle := strings.ToLower(strings.TrimSpace(city))
	if needle == "" {
		return nil
	}
	var matched []Outlet
	for _, o := range outlets {
		if strings.Contains(strings.ToLower(o.City), needle) {
			matched = append(matched, o)
		}
	}
	return matched
}

// OutletsByState returns every outlet whose state matches (case-insensitive).
func OutletsByState(state string) []Outlet {
	needle := strings.ToLower(strings.TrimSpace(state))
	if needle == "" {
		return nil
	}
	var matched []Outlet
	for _, o := range outlets {
		if strings.Contains(strings.ToLower(o.State), needle) {
			matched = append(matched, o)
		}
	}
	return matched
}

// BrandOutlets returns the company-owned flagship locations.
func BrandOutlets() []Outlet {
	var matched []Outlet
	for _, o := range outlets {
		if o.Kind == "Brand Outlet" {
			matched = append(matched, o)
		}
	}
	return matched
}

// AllCities returns the sorted set of cities with at least one outlet.
func AllCities() []string {
	seen := make(map[string]struct{})
	var cities []string
	for _, o := range outlets {
		if _, ok := seen[o.City]; ok {
			continue
		}
		seen[o.City] = struct{}{}
		cities = append(cities, o.City)
	}
	sort.Strings(cities)
	return cities
}

// AllStates returns the sorted set of states with at least one outlet.
func AllStates() []string {
	seen := make(map[string]struct{})
	var states []string
	for _, o := range outlets {
		if _, ok := seen[o.State]; ok {
			continue
		}
		seen[o.State] = struct{}{}
		states = append(states, o.State)
	}
	sort.Strings(states)
	return states
}
