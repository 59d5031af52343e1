// Package heatrisk classifies urban heat exposure.
//
// # Tiers
//
// A city's aggregate climate attributes map to one of three tiers, checked in
// this order (the first match wins):
//
//	High:   avg temperature > 30 °C and green cover < 25 %
//	Medium: avg temperature > 26 °C
//	Low:    everything else
//
// Both comparisons are strict, so 26 °C is Low and 30 °C with 10 % green cover
// is Medium. The order matters: 31 °C with 40 % green cover is Medium, never
// High.
//
// # Reference data
//
// Authored city aggregates exist for a handful of cities; any other city uses
// the default aggregate (29 °C, 25 % green cover). Zones are named sub-areas
// of a city with their own static tier; they are display data and are not
// passed through Classify.
package heatrisk
