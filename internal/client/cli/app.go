package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/api"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/config"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/router"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/session"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/storage"
	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/logging"
)

// App ties the client together: config, API client, session manager, and the
// interactive command loop.
type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Manager
	db      *sql.DB
	reader  *bufio.Reader
	log     logging.Logger
}

// NewApp opens the local database, builds the API client and session
// manager, and returns a ready App.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	store, db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	apiClient := api.New(c.BackendOrigin)
	sess := session.NewManager(apiClient, store, log)

	app := &App{
		config:  c,
		api:     apiClient,
		session: sess,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}

	// When the session is torn down elsewhere (expired token, logout), the
	// next prompt reflects it. Navigation stays here, not in the session.
	sess.Subscribe(func(s session.Snapshot) {
		if !s.Loading && !s.Authenticated && !s.HasPendingRegistration {
			app.onSignedOut()
		}
	})

	return app, nil
}

func (a *App) onSignedOut() {
	// The router sends unauthenticated users to the login view; nothing else
	// to do for a terminal client beyond updating the prompt.
}

// Run performs the startup identity check and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.session.CheckSession(ctx)
	a.root(ctx)
}

// open routes a navigation request and renders the resulting view, following
// redirects until a view is allowed to render.
func (a *App) open(ctx context.Context, view router.View, args []string) {
	for {
		decision := router.Decide(a.session.Snapshot(), router.Lookup(view))
		if decision.Render {
			break
		}
		fmt.Printf("-> %s\n", decision.RedirectTo)
		view = decision.RedirectTo
		args = nil
	}
	a.render(ctx, view, args)
}

func (a *App) render(ctx context.Context, view router.View, args []string) {
	switch view {
	case router.ViewHome:
		a.home(ctx)
	case router.ViewLogin:
		a.loginView(ctx)
	case router.ViewRegister:
		a.registerView(ctx)
	case router.ViewForgotPassword:
		a.forgotPasswordView(ctx)
	case router.ViewAdminLogin:
		a.adminLoginView(ctx)
	case router.ViewDonate:
		a.donateView(ctx)
	case router.ViewApply:
		a.applyView(ctx)
	case router.ViewPay:
		a.payView(ctx)
	case router.ViewMembers:
		a.membersView(ctx)
	case router.ViewMemberProfile:
		a.memberProfileView(ctx, args)
	case router.ViewProfile:
		a.profileView(ctx)
	case router.ViewDashboard:
		a.dashboardView(ctx)
	case router.ViewAdmin:
		a.adminView(ctx)
	default:
		fmt.Println("Unknown view:", view)
	}
}
