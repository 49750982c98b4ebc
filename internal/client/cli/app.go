package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reomoon/memo/internal/client/client"
	"github.com/reomoon/memo/internal/client/clipboard"
	"github.com/reomoon/memo/internal/client/config"
	"github.com/reomoon/memo/internal/client/memostore"
	"github.com/reomoon/memo/internal/client/repositories/storage"
	"github.com/reomoon/memo/internal/client/services"
	"github.com/reomoon/memo/internal/client/ui"
	"github.com/reomoon/memo/internal/filex"
	"github.com/reomoon/memo/internal/logging"

	_ "modernc.org/sqlite"
)

// DatabaseFile is the sqlite file name inside the data directory.
const DatabaseFile = "memo.db"

// App is the composition root: it owns the store, the view controller and
// the auth service and binds REPL commands to them.
type App struct {
	config      *config.Config
	logger      logging.Logger
	controller  *ui.Controller
	authService services.AuthService
	reader      *bufio.Reader
	out         io.Writer
	userName    string
	closers     []func() error
}

// openStorage returns the configured key-value backend and its closer.
func openStorage(ctx context.Context, c *config.Config) (storage.Repository, func() error, error) {
	switch c.Backend {
	case config.BackendS3:
		repo, err := storage.NewS3Repository(ctx, storage.S3Config{
			Bucket:       c.S3.Bucket,
			Region:       c.S3.Region,
			BaseEndpoint: c.S3.BaseEndpoint,
			AccessKey:    c.S3.AccessKey,
			SecretKey:    c.S3.SecretKey,
			Prefix:       c.S3.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() error { return nil }, nil

	default:
		dir, err := filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, nil, err
		}
		db, err := client.InitDatabase(ctx, filepath.Join(dir, DatabaseFile))
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		return storage.NewSQLiteRepository(db), db.Close, nil
	}
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repo, closeRepo, err := openStorage(ctx, c)
	if err != nil {
		logger.Error(ctx, "error opening storage", "backend", c.Backend, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(ctx, c, logger, repo, apiClient, bufio.NewReader(os.Stdin), os.Stdout, closeRepo), nil
}

// newApp wires an App from already constructed dependencies.
func newApp(
	ctx context.Context,
	c *config.Config,
	logger logging.Logger,
	repo storage.Repository,
	apiClient client.Client,
	reader *bufio.Reader,
	out io.Writer,
	closers ...func() error,
) *App {
	store := memostore.New(repo, apiClient,
		memostore.WithPageSize(c.PageSize),
		memostore.WithLogger(logger),
	)
	store.Load(ctx)

	term := newTerminal(reader, out)
	controller := ui.NewController(ui.Deps{
		Store:     store,
		Assistant: apiClient,
		Prompter:  term,
		Confirmer: term,
		Clipboard: clipboard.New(os.Stderr),
		Notifier:  term,
		Logger:    logger,
	})

	return &App{
		config:      c,
		logger:      logger,
		controller:  controller,
		authService: services.NewAuthService(apiClient, repo, logger),
		reader:      reader,
		out:         out,
		closers:     closers,
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases storage handles.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// withTimeout bounds one network-backed command.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
