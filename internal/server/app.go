// Package server initializes and runs the memo proxy: it wires the session
// store, the GitHub and AI clients and the HTTP API, and handles graceful
// shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/reomoon/memo/internal/logging"
	"github.com/reomoon/memo/internal/server/ai"
	"github.com/reomoon/memo/internal/server/config"
	"github.com/reomoon/memo/internal/server/github"
	"github.com/reomoon/memo/internal/server/httpapi"
	"github.com/reomoon/memo/internal/server/repositories/repomanager"
	"github.com/reomoon/memo/internal/server/repositories/sessions"
	"github.com/reomoon/memo/internal/server/services"
)

// upstreamTimeout bounds each call to GitHub.
const upstreamTimeout = 15 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService *services.AuthService
	textService *services.TextService
}

// openSessions returns the configured session repository. The returned
// *sql.DB is nil for the memory store.
func openSessions(ctx context.Context, c *config.Config) (sessions.Repository, *sql.DB, error) {
	if c.SessionStore != config.SessionStorePostgres {
		return sessions.NewMemoryRepository(), nil, nil
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations error: %w", err)
	}
	return rm.Sessions(db), db, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repo, db, err := openSessions(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	gh := github.New(c.GitHubClientID, c.GitHubClientSecret, upstreamTimeout)
	as := services.NewAuthService(gh, repo, c.RedirectURL, logger)

	var completer services.Completer
	if c.AIKey != "" {
		completer = ai.New(c.AIKey, c.AIBaseURL, c.AIModel)
	} else {
		logger.Warn(ctx, "AI API key is not set; text endpoints will fail")
	}
	ts := services.NewTextService(completer, logger)

	return &App{config: c, logger: logger, db: db, authService: as, textService: ts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := httpapi.NewRouter(app.authService, app.textService, app.logger)
	s := httpapi.NewServer(app.config.ListenAddr, router, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a termination signal or ctx cancellation, then closes
// the database.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}
	app.logger.Info(ctx, "Stopped")
}
