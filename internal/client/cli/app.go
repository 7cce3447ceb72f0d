package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/codeshack/internal/client/client"
	"github.com/dmitrijs2005/codeshack/internal/client/config"
	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/client/services"
	"github.com/dmitrijs2005/codeshack/internal/client/session"
	"github.com/dmitrijs2005/codeshack/internal/logging"
)

// App holds the services behind the REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	store    session.Store
	auth     services.AuthService
	qa       services.QAService
	space    services.SpaceService
	profiles services.ProfileService
	admin    services.AdminService
	reader   *bufio.Reader
	out      io.Writer

	// pending is the mentor queue as last shown, so approve and reject can
	// update it without a reload.
	pending []models.User
	// userFilter is the filter of the last users listing; ban and unban
	// re-fetch with it.
	userFilter services.UserFilter
}

// NewApp opens the session database and wires the API client and services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.SessionDB)
	if err != nil {
		log.Error(ctx, "error initializing session database", "path", c.SessionDB, "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db, log)
	api := client.New(client.Options{
		BaseURL:   c.APIURL,
		Timeout:   c.Timeout,
		Tokens:    session.TokenSource{Store: store},
		Logger:    log,
		RateLimit: c.RateLimit,
		Dedup:     c.Dedup,
	})

	a := newApp(api, store, log, bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(api *client.Client, store session.Store, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Discard()
	}
	auth := services.NewAuthService(api, store, log)
	return &App{
		log:        log,
		store:      store,
		auth:       auth,
		qa:         services.NewQAService(api, auth, log),
		space:      services.NewSpaceService(api, auth),
		profiles:   services.NewProfileService(api, auth, log),
		admin:      services.NewAdminService(api, auth, log),
		reader:     reader,
		out:        out,
		userFilter: services.FilterAll,
	}
}

// Run greets the user and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	fmt.Fprintln(a.out, "Welcome to CodeShack CLI (type 'help' for commands)")
	if u, _ := a.auth.CurrentUser(ctx); u != nil {
		fmt.Fprintf(a.out, "Signed in as %s.\n", u.Name)
	}
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.IsAuthenticated(ctx)
}

func (a *App) isAdmin(ctx context.Context) bool {
	return a.auth.IsAdmin(ctx)
}

// gate checks the session against roles before a command prompts for
// input, so a form is never shown to someone who may not submit it.
func (a *App) gate(ctx context.Context, roles ...models.Role) (*models.UserSummary, error) {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return nil, a.report(ctx, err)
	}
	if err := services.Authorize(u, roles...).Err(); err != nil {
		return nil, a.report(ctx, err)
	}
	return u, nil
}

// status is the prompt decoration: "(name role)" or empty when anonymous.
func (a *App) status(ctx context.Context) string {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil || u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Name, u.Role)
}
