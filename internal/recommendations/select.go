// Package recommendations maps a heat-risk tier to its advisory list.
//
// Each tier has a fixed list, ordered by priority (first is the most
// important). Select never fails: a value outside the known tiers gets the
// Low list.
package recommendations

import "github.com/dmitrijs2005/greenpath/internal/heatrisk"

var byTier = map[heatrisk.Tier][]string{
	heatrisk.High: {
		"Increase tree plantation in dense residential areas to reduce heat absorption.",
		"Use reflective or 'cool-roof' materials to lower indoor temperatures and save energy.",
		"Avoid outdoor activities during peak afternoon hours (12 PM - 4 PM) to minimize heat exposure.",
		"Promote the development of shaded pedestrian walkways and green corridors to connect parks.",
		"Advocate for permeable pavements to reduce surface heat and allow rainwater to recharge groundwater.",
		"Install exterior window shades or awnings to block direct sunlight from entering buildings.",
		"Utilize public transportation to reduce vehicle emissions, a major contributor to urban heat.",
		"Support local policies that mandate green building standards for new constructions.",
	},
	heatrisk.Medium: {
		"Start a balcony, terrace, or rooftop garden to improve local cooling and biodiversity.",
		"Use light-colored curtains or blinds to reflect sunlight and keep interiors cool.",
		"Encourage community greening initiatives like planting native shrubs in open spaces.",
		"Adopt water-efficient irrigation methods like drip systems for your gardens.",
		"Create a small water body like a pond or a fountain in your garden to create a cooling effect.",
		"Join or form a local group to clean up and maintain nearby parks and water bodies.",
		"Replace concrete driveways or paths with grass pavers or gravel to reduce heat retention.",
		"Choose outdoor furniture made from natural, heat-resistant materials like wood or bamboo.",
	},
	heatrisk.Low: {
		"Focus on maintaining and expanding existing green cover by planting native species.",
		"Implement rainwater harvesting systems to collect and store water for plant irrigation.",
		"Protect and preserve local parks, urban forests, and water bodies from encroachment.",
		"Encourage eco-friendly building practices that blend with the natural landscape.",
		"Create a compost pit to recycle organic waste and enrich the soil for your garden.",
		"Install bird feeders and baths to support local wildlife and enhance biodiversity.",
		"Organize nature walks or tree identification programs to build community appreciation for green spaces.",
		"Minimize the use of chemical pesticides and fertilizers to protect the local ecosystem.",
	},
}

// Select returns a copy of the advisories for tier, highest priority first.
func Select(tier heatrisk.Tier) []string {
	list, ok := byTier[tier]
	if !ok {
		list = byTier[heatrisk.Low]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
