package heatrisk

// MonthlyTemperature is one point of a city's yearly temperature curve.
type MonthlyTemperature struct {
	Month       string
	Temperature float64
}

// CityProfile is the aggregate climate data shown on the dashboard.
type CityProfile struct {
	AvgTemperature    float64
	GreenCoverPercent float64
	Monthly           []MonthlyTemperature
}

// Tier classifies the profile.
func (p CityProfile) Tier() Tier {
	return Classify(p.AvgTemperature, p.GreenCoverPercent)
}

var months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func series(temps ...float64) []MonthlyTemperature {
	out := make([]MonthlyTemperature, len(temps))
	for i, t := range temps {
		out[i] = MonthlyTemperature{Month: months[i], Temperature: t}
	}
	return out
}

var cityProfiles = map[string]CityProfile{
	"Bengaluru": {
		AvgTemperature:    28.2,
		GreenCoverPercent: 38,
		Monthly:           series(22, 24, 27, 29, 28, 26, 25, 25, 25, 24, 23, 22),
	},
	"Mumbai": {
		AvgTemperature:    30.5,
		GreenCoverPercent: 18,
		Monthly:           series(25, 26, 28, 30, 32, 31, 30, 29, 29, 29, 28, 26),
	},
}

// DefaultCityProfile is used for any city without authored data.
var DefaultCityProfile = CityProfile{
	AvgTemperature:    29,
	GreenCoverPercent: 25,
	Monthly:           series(20, 22, 25, 29, 32, 34, 33, 32, 30, 28, 24, 21),
}

// CityProfileFor returns the authored profile for city, or the default
// profile and false when none exists.
func CityProfileFor(city string) (CityProfile, bool) {
	p, ok := cityProfiles[city]
	if !ok {
		p = DefaultCityProfile
	}
	p.Monthly = append([]MonthlyTemperature(nil), p.Monthly...)
	return p, ok
}
