package service

// Unit is a bookable accommodation type offered to clients.
type Unit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

var unitCatalog = []Unit{
	{"standard-room", "Standard Room", "Comfortable accommodation with basic amenities", "Standard"},
	{"deluxe-suite", "Deluxe Suite", "Spacious suite with premium amenities", "Premium"},
	{"family-room", "Family Room", "Large room suitable for families with children", "Family"},
	{"executive-suite", "Executive Suite", "Luxury suite with business amenities", "Luxury"},
	{"presidential-suite", "Presidential Suite", "Top-tier luxury accommodation", "Luxury"},
	{"kalahari-farmhouse", "Kalahari Farmhouse", "Traditional farmhouse experience", "Unique"},
	{"safari-lodge", "Safari Lodge", "Authentic safari experience", "Adventure"},
	{"desert-camp", "Desert Camp", "Desert camping experience", "Adventure"},
	{"luxury-tent", "Luxury Tent", "Glamping with luxury amenities", "Unique"},
	{"conference-room", "Conference Room", "Business meeting and conference facilities", "Business"},
	{"camping-site", "Camping Site", "Basic camping facilities", "Budget"},
	{"chalet", "Chalet", "Cozy mountain-style accommodation", "Standard"},
	{"villa", "Villa", "Private villa with exclusive amenities", "Luxury"},
	{"cottage", "Cottage", "Charming cottage accommodation", "Standard"},
	{"bungalow", "Bungalow", "Standalone bungalow accommodation", "Premium"},
}

// Units returns a copy of the unit catalog.
func Units() []Unit {
	out := make([]Unit, len(unitCatalog))
	copy(out, unitCatalog)
	return out
}

// UnitCategories returns the distinct categories in first-seen order.
func UnitCategories(units []Unit) []string {
	seen := make(map[string]struct{}, len(units))
	var out []string
	for _, u := range units {
		if _, ok := seen[u.Category]; ok {
			continue
		}
		seen[u.Category] = struct{}{}
		out = append(out, u.Category)
	}
	return out
}
