package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveStore("save", nil)
		m.ObserveCorruption()
		m.ObserveAdvisor("report", errors.New("x"), time.Second)
		m.ObservePaced()
	})
}

func TestObserveStore_CountsByOutcome(t *testing.T) {
	m := NewMetricsForTesting()

	m.ObserveStore("save", nil)
	m.ObserveStore("save", nil)
	m.ObserveStore("save", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("save", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperations.WithLabelValues("save", OutcomeError)))
}

func TestObserveAdvisor(t *testing.T) {
	m := NewMetricsForTesting()

	m.ObserveAdvisor("report", nil, 200*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AdvisorRequests.WithLabelValues("report", OutcomeSuccess)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AdvisorDuration))
}

func TestServer_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObservePaced()

	srv := NewServer("127.0.0.1:0", reg, logging.Discard())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "greenpath_paced_operations_total 1")
}
