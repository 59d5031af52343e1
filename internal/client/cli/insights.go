package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/greenpath/internal/common"
)

// Dashboard prints the heat-risk overview for the user's city.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.insightsService.Dashboard(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Heat risk for %s: %s\n", d.City, d.Tier)
	fmt.Fprintf(a.out, "Average temperature: %.1f°C   Green cover: %.0f%%\n", d.Profile.AvgTemperature, d.Profile.GreenCoverPercent)
	if !d.Authored {
		fmt.Fprintln(a.out, "(No city data yet; showing regional averages.)")
	}

	months := make([]string, 0, len(d.Profile.Monthly))
	for _, m := range d.Profile.Monthly {
		months = append(months, fmt.Sprintf("%s %.1f", m.Month, m.Temperature))
	}
	if len(months) > 0 {
		fmt.Fprintln(a.out, "Monthly:", strings.Join(months, ", "))
	}

	fmt.Fprintf(a.out, "Recommendations for %s:\n", d.City)
	printNumbered(a, d.Recommendations)
	return nil
}

// Analysis prints the zone-by-zone breakdown.
func (a *App) Analysis(ctx context.Context) error {
	z, err := a.insightsService.Zones(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	if z.Fallback {
		fmt.Fprintf(a.out, "No zone data for your city yet; showing %s.\n", z.City)
	}
	fmt.Fprintf(a.out, "Zone analysis for %s:\n", z.City)
	for _, zone := range z.Zones {
		fmt.Fprintf(a.out, "  %-28s %-6s %5.1f°C  %3.0f%% green\n", zone.Name, zone.Risk, zone.AvgTemperature, zone.GreenCoverPercent)
	}
	return nil
}

// Report asks the advisor for a sustainability report.
func (a *App) Report(ctx context.Context) error {
	fmt.Fprintln(a.out, "Generating your report...")
	report, err := a.insightsService.Report(ctx)
	if err != nil {
		if errors.Is(err, common.ErrExternalService) {
			fmt.Fprintln(a.out, "Failed to generate the report. Please try again later.")
			return err
		}
		return a.report(ctx, err)
	}

	fmt.Fprintln(a.out, report)
	return nil
}

// Recommend asks the advisor for recommendations tailored to optional
// preferences.
func (a *App) Recommend(ctx context.Context) error {
	prefs, err := getSimpleText(a.reader, "Any preferences or concerns? (optional)", a.out)
	if err != nil {
		return err
	}

	recs, err := a.insightsService.TailoredRecommendations(ctx, prefs)
	if err != nil {
		return a.report(ctx, err)
	}
	printNumbered(a, recs)
	return nil
}

func (a *App) Ask(ctx context.Context) error {
	q, err := getSimpleText(a.reader, "Ask about heat risk, green solutions, or sustainability ideas", a.out)
	if err != nil {
		return err
	}

	answer, err := a.insightsService.Ask(ctx, q)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, answer)
	return nil
}

func printNumbered(a *App, items []string) {
	for i, item := range items {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, item)
	}
}
