package client

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/greenpath/internal/client/models"
)

// Advisor generates personalised sustainability advice.
type Advisor interface {
	GenerateSustainabilityReport(ctx context.Context, in ReportRequest) (ReportResponse, error)
	TailorDashboardRecommendations(ctx context.Context, in RecommendationsRequest) (RecommendationsResponse, error)
}

// ReportRequest asks for a report for a city and living type.
type ReportRequest struct {
	Location   string            `json:"location"`
	LivingType models.LivingType `json:"livingType"`
}

type ReportResponse struct {
	Report string `json:"report"`
}

// RecommendationsRequest asks for dashboard advice. Preferences is free text
// and may be empty.
type RecommendationsRequest struct {
	City        string            `json:"city"`
	LivingType  models.LivingType `json:"livingType"`
	Preferences string            `json:"preferences,omitempty"`
}

type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

func (r ReportRequest) valid() bool {
	return r.Location != "" && r.LivingType.Valid()
}

func (r RecommendationsRequest) valid() bool {
	return r.City != "" && r.LivingType.Valid()
}

func (r *ReportResponse) check() error {
	if r.Report == "" {
		return errors.New("empty report")
	}
	return nil
}

func (r *RecommendationsResponse) check() error {
	if r.Recommendations == nil {
		return errors.New("missing recommendations")
	}
	return nil
}
