// Package locations holds the static country → state → city reference data
// and the cascading selection rules used by the location and setup flows.
//
// Lookups are total: an unset or unknown key resolves to an empty list, so
// new hierarchy entries can be added without breaking existing callers.
package locations

var countries = []string{"India"}

var states = map[string][]string{
	"India": {
		"Andhra Pradesh",
		"Delhi",
		"Gujarat",
		"Karnataka",
		"Kerala",
		"Madhya Pradesh",
		"Maharashtra",
		"Rajasthan",
		"Tamil Nadu",
		"Telangana",
		"Uttar Pradesh",
		"West Bengal",
	},
	"United States": {"California", "New York"},
}

var cities = map[string][]string{
	"Karnataka":      {"Bengaluru", "Mysuru", "Mangaluru", "Hubballi", "Belagavi"},
	"Maharashtra":    {"Mumbai", "Pune", "Nagpur", "Nashik", "Thane"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"},
	"Delhi":          {"New Delhi", "Dwarka", "Rohini", "Saket", "Karol Bagh"},
	"Telangana":      {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar", "Khammam"},
	"Uttar Pradesh":  {"Lucknow", "Kanpur", "Agra", "Varanasi", "Prayagraj"},
	"Gujarat":        {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar"},
	"Rajasthan":      {"Jaipur", "Jodhpur", "Udaipur", "Kota", "Bikaner", "Ajmer"},
	"West Bengal":    {"Kolkata", "Howrah", "Asansol", "Siliguri", "Durgapur"},
	"Andhra Pradesh": {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Tirupati"},
	"Kerala":         {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam", "Kasaragod"},
	"Madhya Pradesh": {"Indore", "Bhopal", "Jabalpur", "Gwalior", "Ujjain"},
	"California":     {"Los Angeles", "San Francisco", "San Diego", "Sacramento", "San Jose"},
	"New York":       {"New York City", "Buffalo", "Rochester", "Albany", "Syracuse"},
}

// Countries returns the selectable countries in display order.
func Countries() []string {
	return clone(countries)
}

// States returns the states of country in display order, or an empty slice
// when country is unset or unknown.
func States(country string) []string {
	if country == "" {
		return []string{}
	}
	return clone(states[country])
}

// Cities returns the cities of state in display order, or an empty slice
// when state is unset or unknown.
func Cities(state string) []string {
	if state == "" {
		return []string{}
	}
	return clone(cities[state])
}

// IsState reports whether state is a child of country.
func IsState(country, state string) bool {
	return contains(states[country], state)
}

// IsCity reports whether city is a child of state.
func IsCity(state, city string) bool {
	return contains(cities[state], city)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
