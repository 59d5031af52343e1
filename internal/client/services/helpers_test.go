package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/greenpath/internal/client/client"
	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/client/profile"
	"github.com/dmitrijs2005/greenpath/internal/client/repositories/kv"
	"github.com/dmitrijs2005/greenpath/internal/client/session"
	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/stretchr/testify/require"
)

// immediatePacer runs work inline.
type immediatePacer struct {
	calls int
}

func (p *immediatePacer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fixture struct {
	mem     *kv.MemoryStore
	store   *profile.Store
	session *session.Context
	pacer   *immediatePacer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := kv.NewMemoryStore()
	store := profile.NewStore(mem, logging.Discard(), nil)
	sess := session.New(store, logging.Discard())
	sess.Init(context.Background())
	return &fixture{mem: mem, store: store, session: sess, pacer: &immediatePacer{}}
}

// signIn registers p and makes it the session user.
func (f *fixture) signIn(t *testing.T, p models.UserProfile) {
	t.Helper()
	require.NoError(t, f.store.Register(context.Background(), p))
	f.session.SetUser(&p)
}

type stubAdvisor struct {
	report    string
	recs      []string
	err       error
	reportReq client.ReportRequest
	recsReq   client.RecommendationsRequest
}

func (a *stubAdvisor) GenerateSustainabilityReport(_ context.Context, in client.ReportRequest) (client.ReportResponse, error) {
	a.reportReq = in
	if a.err != nil {
		return client.ReportResponse{}, a.err
	}
	return client.ReportResponse{Report: a.report}, nil
}

func (a *stubAdvisor) TailorDashboardRecommendations(_ context.Context, in client.RecommendationsRequest) (client.RecommendationsResponse, error) {
	a.recsReq = in
	if a.err != nil {
		return client.RecommendationsResponse{}, a.err
	}
	return client.RecommendationsResponse{Recommendations: a.recs}, nil
}

var asha = models.UserProfile{
	ID: "user_1", Email: "asha@example.org", DisplayName: "Asha", Password: "secret1",
	Country: "India", State: "Karnataka", City: "Bengaluru", LivingType: models.LivingFlat,
}

var newcomer = models.UserProfile{
	ID: "user_2", Email: "new@example.org", DisplayName: "New", Password: "secret2",
}
