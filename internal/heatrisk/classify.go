package heatrisk

// Tier is an urban-heat severity level.
type Tier string

const (
	High   Tier = "High"
	Medium Tier = "Medium"
	Low    Tier = "Low"
)

// Tiers lists every tier from most to least severe.
var Tiers = []Tier{High, Medium, Low}

const (
	highTempThreshold   = 30.0
	highGreenThreshold  = 25.0
	mediumTempThreshold = 26.0
)

// Classify maps a city's average temperature (°C) and green cover (%) to a
// tier. It is total over all inputs.
func Classify(avgTemperature, greenCoverPercent float64) Tier {
	if avgTemperature > highTempThreshold && greenCoverPercent < highGreenThreshold {
		return High
	}
	if avgTemperature > mediumTempThreshold {
		return Medium
	}
	return Low
}
