package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/heatrisk"
	"github.com/dmitrijs2005/greenpath/internal/recommendations"
)

// OfflineAdvisor answers from the built-in city profiles and advisory
// tables. It never calls out, so the only failure is invalid input.
type OfflineAdvisor struct{}

func NewOfflineAdvisor() *OfflineAdvisor {
	return &OfflineAdvisor{}
}

func (OfflineAdvisor) GenerateSustainabilityReport(_ context.Context, in ReportRequest) (ReportResponse, error) {
	if !in.valid() {
		return ReportResponse{}, fmt.Errorf("%w: invalid input", ErrGenerationFailed)
	}

	city, _ := heatrisk.CityProfileFor(in.Location)
	tier := city.Tier()

	var b strings.Builder
	fmt.Fprintf(&b, "Sustainability report for %s (%s)\n\n", in.Location, in.LivingType.Label())
	fmt.Fprintf(&b, "Urban heat: %s risk. Average temperature %.1f°C, green cover %.0f%%.\n\n",
		tier, city.AvgTemperature, city.GreenCoverPercent)
	b.WriteString("What you can do:\n")
	for i, rec := range forLivingType(recommendations.Select(tier), in.LivingType) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	return ReportResponse{Report: b.String()}, nil
}

func (OfflineAdvisor) TailorDashboardRecommendations(_ context.Context, in RecommendationsRequest) (RecommendationsResponse, error) {
	if !in.valid() {
		return RecommendationsResponse{}, fmt.Errorf("%w: invalid input", ErrGenerationFailed)
	}

	city, _ := heatrisk.CityProfileFor(in.City)
	recs := forLivingType(recommendations.Select(city.Tier()), in.LivingType)
	if p := strings.TrimSpace(in.Preferences); p != "" {
		recs = append(recs, fmt.Sprintf("Keep your focus on %q in mind when picking from the list above.", p))
	}
	return RecommendationsResponse{Recommendations: recs}, nil
}

var livingTypeTips = map[models.LivingType]string{
	models.LivingFlat:   "Start small: a green balcony with potted plants and climbers cools your flat.",
	models.LivingHouse:  "Use your roof: reflective cool-roof paint or a rooftop garden lowers indoor heat.",
	models.LivingGround: "Use your land: plant native, drought-resistant trees for lasting shade.",
}

func forLivingType(recs []string, lt models.LivingType) []string {
	return append([]string{livingTypeTips[lt]}, recs...)
}
