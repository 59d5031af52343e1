package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/dmitrijs2005/greenpath/internal/observability"
	"github.com/jonboulle/clockwork"
)

const (
	reportPath          = "/sustainability-report"
	recommendationsPath = "/dashboard-recommendations"
)

// HTTPAdvisor implements Advisor against a JSON-over-HTTP endpoint.
type HTTPAdvisor struct {
	baseURL    string
	httpClient *http.Client
	clock      clockwork.Clock
	logger     logging.Logger
	metrics    *observability.Metrics
}

// NewHTTPAdvisor creates an advisor client for baseURL. metrics may be nil.
func NewHTTPAdvisor(baseURL string, timeout time.Duration, logger logging.Logger, metrics *observability.Metrics) *HTTPAdvisor {
	return &HTTPAdvisor{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:   clockwork.NewRealClock(),
		logger:  logger,
		metrics: metrics,
	}
}

func (a *HTTPAdvisor) GenerateSustainabilityReport(ctx context.Context, in ReportRequest) (ReportResponse, error) {
	var out ReportResponse
	if err := a.call(ctx, "report", reportPath, in, in.valid(), &out); err != nil {
		return ReportResponse{}, err
	}
	return out, nil
}

func (a *HTTPAdvisor) TailorDashboardRecommendations(ctx context.Context, in RecommendationsRequest) (RecommendationsResponse, error) {
	var out RecommendationsResponse
	if err := a.call(ctx, "recommendations", recommendationsPath, in, in.valid(), &out); err != nil {
		return RecommendationsResponse{}, err
	}
	return out, nil
}

// response is a decoded advisor reply that can tell whether it is usable.
type response interface {
	check() error
}

func (a *HTTPAdvisor) call(ctx context.Context, method, path string, in any, valid bool, out response) error {
	start := a.clock.Now()
	err := a.doRequest(ctx, path, in, valid, out)
	a.metrics.ObserveAdvisor(method, err, a.clock.Since(start))

	if err != nil {
		a.logger.Error(ctx, "advisor request failed", "method", method, "error", err)
		if errors.Is(err, ErrGenerationFailed) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return nil
}

func (a *HTTPAdvisor) doRequest(ctx context.Context, path string, in any, valid bool, out response) error {
	if !valid {
		return fmt.Errorf("%w: invalid input", ErrGenerationFailed)
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("advisor request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("advisor API error: status %d: %s", resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return out.check()
}
