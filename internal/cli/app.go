package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"skillup/internal/api"
	"skillup/internal/config"
	"skillup/internal/logging"
	"skillup/internal/models"
	"skillup/internal/storage"
	"skillup/internal/store"

	_ "modernc.org/sqlite"
)

// courseActions is the slice of the action layer the shell commands call.
// Kept as an interface so command tests can stub the I/O side wholesale.
type courseActions interface {
	Login(ctx context.Context, creds models.LoginCredentials) error
	Register(ctx context.Context, creds models.RegisterCredentials) error
	LoadUserFromStorage(ctx context.Context) bool
	Logout(ctx context.Context) error
	FetchCourses(ctx context.Context) error
	FetchCourseByID(ctx context.Context, key string) error
	ToggleFavourite(ctx context.Context, id string) error
	LoadFavourites(ctx context.Context)
	LoadTheme(ctx context.Context) bool
	SaveTheme(ctx context.Context, dark bool) error
}

type App struct {
	config  *config.Config
	store   *store.Store
	actions courseActions
	db      *sql.DB
	dark    bool
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the full client: local settings database, API clients per
// the configured catalog source, the state container and its actions.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault()

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing settings database", "error", err)
		return nil, err
	}

	settings := storage.NewSettings(storage.NewSQLiteRepository(db), log)
	authClient := api.NewAuthClient(cfg.AuthBaseURL, cfg.RequestTimeout, log)

	var catalog api.Catalog
	switch cfg.CatalogSource {
	case config.SourceProducts:
		// The legacy product catalog lives on the same host as the auth service.
		catalog = api.NewProductsClient(cfg.AuthBaseURL, cfg.RequestTimeout, log)
	default:
		catalog = api.NewOpenLibraryClient(cfg.CatalogBaseURL, cfg.RequestTimeout, cfg.Subjects, cfg.SubjectLimit, log)
	}

	st := store.New()
	actions := store.NewActions(st, authClient, catalog, settings, log)

	return &App{
		config:  cfg,
		store:   st,
		actions: actions,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores persisted state and enters the shell loop. The settings
// database is closed when the loop exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.restore(ctx)
	a.Root(ctx)
}

func (a *App) restore(ctx context.Context) {
	if a.actions.LoadUserFromStorage(ctx) {
		if u := a.store.Auth().User; u != nil {
			a.printf("Welcome back, %s!\n", u.Username)
		}
	}
	a.actions.LoadFavourites(ctx)
	a.dark = a.actions.LoadTheme(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth().IsAuthenticated
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
