package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/dmitrijs2005/greenpath/internal/client/client"
	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/client/session"
	"github.com/dmitrijs2005/greenpath/internal/common"
	"github.com/dmitrijs2005/greenpath/internal/heatrisk"
	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/dmitrijs2005/greenpath/internal/recommendations"
)

// Dashboard is the heat-risk overview for the active user's city.
type Dashboard struct {
	City            string
	Profile         heatrisk.CityProfile
	Authored        bool // false when Profile is the default aggregate
	Tier            heatrisk.Tier
	Recommendations []string
}

// ZoneAnalysis lists the zones shown for a city. City is the city the zones
// belong to, which is the default zone city when the user's city has none.
type ZoneAnalysis struct {
	City     string
	Zones    []heatrisk.Zone
	Fallback bool
}

// InsightsService derives what the dashboard, analysis and report views
// show. Derivations are pure; only Report and TailoredRecommendations call
// the advisor.
type InsightsService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Zones(ctx context.Context) (*ZoneAnalysis, error)
	Report(ctx context.Context) (string, error)
	TailoredRecommendations(ctx context.Context, preferences string) ([]string, error)
	Ask(ctx context.Context, question string) (string, error)
}

var askResponses = []string{
	"Planting native, drought-resistant trees is one of the most effective ways to create shade and can reduce surface temperatures by up to 2-3°C in your immediate vicinity.",
	"For apartment dwellers, creating a green balcony with potted plants and climbers not only beautifies the space but also contributes to a micro-cooling effect.",
	"Advocating for 'cool roofs' with reflective paint in your community can significantly lower building temperatures and reduce the need for air conditioning, saving energy and money.",
	"Community gardens are a great way to increase green cover in dense urban areas. They also foster community engagement and provide access to fresh produce.",
}

type insightsService struct {
	session *session.Context
	advisor client.Advisor
	pacer   Pacer
	log     logging.Logger
	pick    func(n int) int
}

func NewInsightsService(sess *session.Context, advisor client.Advisor, pacer Pacer, log logging.Logger) InsightsService {
	return &insightsService{session: sess, advisor: advisor, pacer: pacer, log: log, pick: rand.IntN}
}

func (s *insightsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	user, err := s.setUpUser()
	if err != nil {
		return nil, err
	}

	profile, authored := heatrisk.CityProfileFor(user.City)
	tier := profile.Tier()
	return &Dashboard{
		City:            user.City,
		Profile:         profile,
		Authored:        authored,
		Tier:            tier,
		Recommendations: recommendations.Select(tier),
	}, nil
}

func (s *insightsService) Zones(ctx context.Context) (*ZoneAnalysis, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, common.ErrNoActiveUser
	}

	city := user.City
	fallback := !heatrisk.HasZones(city)
	if fallback {
		city = heatrisk.DefaultZonesCity
	}
	return &ZoneAnalysis{City: city, Zones: heatrisk.ZonesFor(city), Fallback: fallback}, nil
}

// Report asks the advisor for a sustainability report. The user needs both
// a city and a living type.
func (s *insightsService) Report(ctx context.Context) (string, error) {
	user, err := s.setUpUser()
	if err != nil {
		return "", err
	}
	if user.LivingType == "" {
		return "", common.ErrSetupIncomplete
	}

	out, err := s.advisor.GenerateSustainabilityReport(ctx, client.ReportRequest{
		Location:   user.City,
		LivingType: user.LivingType,
	})
	if err != nil {
		s.log.Error(ctx, "report generation failed", "city", user.City, "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrExternalService, err)
	}
	return out.Report, nil
}

func (s *insightsService) TailoredRecommendations(ctx context.Context, preferences string) ([]string, error) {
	user, err := s.setUpUser()
	if err != nil {
		return nil, err
	}

	lt := user.LivingType
	if lt == "" {
		lt = models.DefaultLivingType
	}

	out, err := s.advisor.TailorDashboardRecommendations(ctx, client.RecommendationsRequest{
		City:        user.City,
		LivingType:  lt,
		Preferences: strings.TrimSpace(preferences),
	})
	if err != nil {
		s.log.Error(ctx, "tailored recommendations failed", "city", user.City, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrExternalService, err)
	}
	return out.Recommendations, nil
}

// Ask answers a free-text question with one of the canned tips.
func (s *insightsService) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		ve := &common.ValidationError{}
		ve.Add("question", "Please enter a question.")
		return "", ve
	}

	var answer string
	err := s.pacer.Do(ctx, func(context.Context) error {
		answer = askResponses[s.pick(len(askResponses))]
		return nil
	})
	return answer, err
}

func (s *insightsService) setUpUser() (*models.UserProfile, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, common.ErrNoActiveUser
	}
	if !user.SetupComplete() {
		return nil, common.ErrSetupIncomplete
	}
	return user, nil
}
