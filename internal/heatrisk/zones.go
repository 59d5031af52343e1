package heatrisk

// Zone is a named sub-area of a city with its own static tier.
type Zone struct {
	Name              string
	Risk              Tier
	AvgTemperature    float64
	GreenCoverPercent float64
}

// DefaultZonesCity names the city whose zones are shown when the requested
// city has none.
const DefaultZonesCity = "Bengaluru"

var cityZones = map[string][]Zone{
	"Bengaluru": {
		{Name: "Majestic & City Market", Risk: High, AvgTemperature: 31.4, GreenCoverPercent: 9},
		{Name: "Whitefield", Risk: High, AvgTemperature: 30.8, GreenCoverPercent: 14},
		{Name: "Electronic City", Risk: Medium, AvgTemperature: 29.6, GreenCoverPercent: 21},
		{Name: "Koramangala", Risk: Medium, AvgTemperature: 28.9, GreenCoverPercent: 27},
		{Name: "Jayanagar", Risk: Low, AvgTemperature: 26.8, GreenCoverPercent: 41},
		{Name: "Cubbon Park & Lalbagh", Risk: Low, AvgTemperature: 25.2, GreenCoverPercent: 68},
	},
	"Mumbai": {
		{Name: "Dharavi", Risk: High, AvgTemperature: 33.1, GreenCoverPercent: 4},
		{Name: "Andheri East", Risk: High, AvgTemperature: 32.2, GreenCoverPercent: 11},
		{Name: "Bandra", Risk: Medium, AvgTemperature: 30.4, GreenCoverPercent: 19},
		{Name: "Powai", Risk: Medium, AvgTemperature: 29.7, GreenCoverPercent: 26},
		{Name: "Sanjay Gandhi National Park", Risk: Low, AvgTemperature: 27.3, GreenCoverPercent: 82},
	},
	"New Delhi": {
		{Name: "Chandni Chowk", Risk: High, AvgTemperature: 34.5, GreenCoverPercent: 6},
		{Name: "Connaught Place", Risk: High, AvgTemperature: 33.2, GreenCoverPercent: 12},
		{Name: "Vasant Kunj", Risk: Medium, AvgTemperature: 31.1, GreenCoverPercent: 24},
		{Name: "Lodhi Gardens", Risk: Low, AvgTemperature: 28.4, GreenCoverPercent: 57},
	},
	"Chennai": {
		{Name: "T. Nagar", Risk: High, AvgTemperature: 33.6, GreenCoverPercent: 7},
		{Name: "Velachery", Risk: Medium, AvgTemperature: 32.0, GreenCoverPercent: 17},
		{Name: "Adyar", Risk: Low, AvgTemperature: 29.5, GreenCoverPercent: 38},
	},
}

// ZonesFor returns the zones of city in display order, or the
// DefaultZonesCity set when city has none.
func ZonesFor(city string) []Zone {
	zones, ok := cityZones[city]
	if !ok {
		zones = cityZones[DefaultZonesCity]
	}
	return append([]Zone(nil), zones...)
}

// HasZones reports whether city has its own zone data.
func HasZones(city string) bool {
	_, ok := cityZones[city]
	return ok
}
