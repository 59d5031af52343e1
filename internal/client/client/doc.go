// Package client contains the GreenPath client's outward-facing building
// blocks.
//
// # Overview
//
// The package provides:
//  1. The Advisor contract for the AI sustainability service:
//     GenerateSustainabilityReport and TailorDashboardRecommendations.
//  2. HTTPAdvisor, which calls a JSON-over-HTTP advisor endpoint.
//  3. OfflineAdvisor, which answers from the built-in heat-risk and
//     recommendation tables when no endpoint is configured.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with the embedded goose migrations applied.
//
// # Error Handling
//
// Every advisor failure, whether transport, status, decoding or invalid
// input, is reported as ErrGenerationFailed (match with errors.Is). There are
// no retries; callers surface the failure.
package client
