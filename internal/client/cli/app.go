package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/greenpath/internal/client/client"
	"github.com/dmitrijs2005/greenpath/internal/client/config"
	"github.com/dmitrijs2005/greenpath/internal/client/pacing"
	"github.com/dmitrijs2005/greenpath/internal/client/profile"
	"github.com/dmitrijs2005/greenpath/internal/client/repositories/kv"
	"github.com/dmitrijs2005/greenpath/internal/client/services"
	"github.com/dmitrijs2005/greenpath/internal/client/session"
	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/dmitrijs2005/greenpath/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db       *sql.DB
	registry *prometheus.Registry
	session  *session.Context
	pacer    *pacing.Pacer

	authService     services.AuthService
	profileService  services.ProfileService
	insightsService services.InsightsService
	feedbackService services.FeedbackService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the database, builds the services and returns an App that
// reads commands from stdin.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	db, tx, err := openStore(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}
	if db == nil {
		log.Warn(ctx, "no database path configured; session data is kept in memory only")
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	var advisor client.Advisor
	if c.AdvisorEndpoint != "" {
		advisor = client.NewHTTPAdvisor(c.AdvisorEndpoint, c.AdvisorTimeout, log, metrics)
	} else {
		advisor = client.NewOfflineAdvisor()
	}

	clock := clockwork.NewRealClock()
	store := profile.NewStore(tx, log, metrics)
	sess := session.New(store, log)
	pacer := pacing.New(clock, c.SaveDelay, metrics)

	return &App{
		config:          c,
		log:             log,
		db:              db,
		registry:        registry,
		session:         sess,
		pacer:           pacer,
		authService:     services.NewAuthService(store, sess, pacer, log),
		profileService:  services.NewProfileService(store, sess, pacer, log),
		insightsService: services.NewInsightsService(sess, advisor, pacer, log),
		feedbackService: services.NewFeedbackService(tx, sess, clock, log),
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}, nil
}

// Run restores the session, optionally starts the metrics listener and
// serves the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if a.config.MetricsAddr != "" {
		srv := observability.NewServer(a.config.MetricsAddr, a.registry, a.log)
		go func() {
			if err := srv.Run(ctx); err != nil {
				a.log.Error(ctx, "metrics listener stopped", "error", err)
			}
		}()
	}

	a.session.Init(ctx)

	fmt.Fprintln(a.out, "Welcome to GreenPath CLI (type 'help' for commands)")
	if u, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.DisplayName)
		a.remindSetup(ctx)
	}

	runREPL(ctx, a, a.status, a.reader)
}

// openStore opens the SQLite store at path. An empty path gives a throwaway
// in-memory store and a nil *sql.DB.
func openStore(ctx context.Context, path string) (*sql.DB, kv.Transactor, error) {
	if path == "" {
		return nil, kv.NewMemoryStore(), nil
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return db, kv.NewSQLiteTransactor(db), nil
}

// Close flushes pending saves and releases the database.
func (a *App) Close() {
	a.pacer.Close()
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.User()
	return ok
}

func (a *App) status() string {
	u, ok := a.session.User()
	if !ok {
		return ""
	}
	if u.City == "" {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return fmt.Sprintf("(%s, %s)", u.Email, u.City)
}

// remindSetup nudges signed-in users without a city towards the location
// command, which every insight view depends on.
func (a *App) remindSetup(ctx context.Context) {
	needs, err := a.profileService.NeedsSetup(ctx)
	if err == nil && needs {
		fmt.Fprintln(a.out, "Your profile has no location yet. Type 'location' to set it up.")
	}
}
