// Package cli wires the client together and drives it from a terminal
// read–eval–print loop. It owns the only Renderer implementation; all page
// content reaching the screen goes through it.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/campusmind/client/internal/config"
	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/dispatch"
	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/logging"
	"github.com/campusmind/client/internal/models"
	"github.com/campusmind/client/internal/notify"
	"github.com/campusmind/client/internal/router"
	"github.com/campusmind/client/internal/session"
	"github.com/campusmind/client/internal/state"
	"github.com/campusmind/client/internal/views"
)

// App glues the session store, gateway, router, dispatcher and views into
// one terminal application.
type App struct {
	cfg        *config.Config
	log        logging.Logger
	api        gateway.API
	sessions   *session.Store
	dir        *directory.Cache
	rtr        *router.Router
	dispatcher *dispatch.Dispatcher
	actions    *views.Actions
	notifier   *notify.Center

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	// sleep is a seam so tests do not wait out the post-action delay.
	sleep func(time.Duration)
}

// NewApp constructs the application graph from configuration.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := state.Open(ctx, cfg.StateDBPath)
	if err != nil {
		log.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	out := io.Writer(os.Stdout)

	notifier := notify.NewCenter(5*time.Second, notify.WithSink(func(t notify.Toast) {
		fmt.Fprintf(out, "[%s] %s\n", t.Level, t.Message)
	}))

	api := gateway.New(cfg.BaseURL, cfg.RequestTimeout, log,
		gateway.WithRetryConfig(cfg.MaxRetries, cfg.RetryDelay))

	repo := state.NewSQLiteRepository(db)
	sessions := session.NewStore(repo, cfg.InactivityTimeout, log, session.WithNotifier(notifier))

	dir := directory.NewCache(api, log)
	sessions.OnClear(dir.Invalidate)

	rtr := router.New(models.PageDashboard, models.PageIssues, models.PageProfile, models.PageAdmin)
	renderer := NewTerminalRenderer(out)
	dispatcher := dispatch.New(api, dir, rtr, renderer, log)

	return &App{
		cfg:        cfg,
		log:        log,
		api:        api,
		sessions:   sessions,
		dir:        dir,
		rtr:        rtr,
		dispatcher: dispatcher,
		actions:    views.NewActions(api, notifier, log),
		notifier:   notifier,
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
		out:        out,
		sleep:      time.Sleep,
	}, nil
}

// Run restores any persisted session, starts the inactivity watcher and
// enters the REPL. It returns when the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	// Navigation re-renders the new page for whoever is logged in.
	a.rtr.OnChange(func(models.Page) {
		if sess := a.sessions.Current(); sess != nil {
			a.dispatcher.Dispatch(ctx, *sess)
		}
	})

	if sess := a.sessions.Restore(ctx); sess != nil {
		if users := a.dir.Refresh(ctx); users == nil {
			a.log.Warn(ctx, "session verification failed, dropping persisted session")
			_ = a.sessions.Clear(ctx)
		} else {
			fmt.Fprintf(a.out, "Welcome back, %s (%s)\n", sess.Name, sess.Role)
			a.dispatcher.Dispatch(ctx, *sess)
		}
	}

	go a.sessions.StartInactivityWatcher(ctx, a.cfg.InactivityCheckInterval, func() {
		fmt.Fprintln(a.out, "You have been logged out.")
	})

	fmt.Fprintln(a.out, "Welcome to CampusMind CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// status is the prompt decoration: user name and role while logged in.
func (a *App) status() string {
	sess := a.sessions.Current()
	if sess == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", sess.Name, sess.Role)
}
