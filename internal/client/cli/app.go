// Package cli implements the interactive zmng shell: profile management,
// login, and camera/event browsing on top of the API services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/pliablepixels/zmng/internal/client/api"
	"github.com/pliablepixels/zmng/internal/client/config"
	"github.com/pliablepixels/zmng/internal/client/models"
	"github.com/pliablepixels/zmng/internal/client/repositories/profiles"
	"github.com/pliablepixels/zmng/internal/client/services"
	"github.com/pliablepixels/zmng/internal/cryptox"
	"github.com/pliablepixels/zmng/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	registry *api.Registry
	profiles profiles.Repository
	db       *sql.DB
	reader   *bufio.Reader

	// active connection state, set by the "use" command
	profile    *models.Profile
	monitorSvc services.MonitorService
	eventSvc   services.EventService
	hostSvc    services.HostService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := buildLogger(cfg)

	db, err := profiles.InitDatabase(ctx, cfg.ProfileDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing profile database: %w", err)
	}

	secret, err := cryptox.LoadOrCreateSecret(cfg.SecretPath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("loading device secret: %w", err)
	}

	repo := profiles.NewSQLiteRepository(db, cryptox.DeriveKey(secret))

	return &App{
		config:   cfg,
		log:      log,
		registry: api.NewRegistry(),
		profiles: repo,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func buildLogger(cfg *config.Config) logging.Logger {
	if cfg.LogFormat == "json" {
		level := slog.LevelInfo
		switch cfg.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		return logging.NewSlogLogger(slog.New(handler))
	}
	return logging.NewConsoleLogger(cfg.LogLevel)
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

// Use activates a saved profile: it builds a client bound to the profile's
// API base URL, registers it, and wires the services. The re-login callback
// closes over the stored credentials so a failed token refresh can fall
// back to a fresh password login.
func (a *App) Use(ctx context.Context, name string) error {
	p, err := a.profiles.GetByName(ctx, name)
	if err != nil {
		return err
	}

	var client *api.Client
	client = api.New(p.APIBaseURL,
		api.WithTimeout(a.config.RequestTimeout),
		api.WithLogger(a.log.With("profile", p.Name)),
		api.WithDevProxy(api.DevProxy{Enabled: a.config.DevProxyEnabled, Addr: a.config.DevProxyAddr}),
		api.WithReLogin(func(ctx context.Context) error {
			if p.Username == "" {
				return fmt.Errorf("profile %q has no stored credentials", p.Name)
			}
			_, err := client.Login(ctx, p.Username, p.Password)
			return err
		}),
	)

	a.registry.Set(client)
	a.profile = p
	a.monitorSvc = services.NewMonitorService(client, p.CGIBaseURL)
	a.eventSvc = services.NewEventService(client)
	a.hostSvc = services.NewHostService(client)
	return nil
}

// Teardown drops the active connection (used by "logout" and profile
// removal).
func (a *App) Teardown() {
	a.registry.Reset()
	a.profile = nil
	a.monitorSvc = nil
	a.eventSvc = nil
	a.hostSvc = nil
}

func (a *App) isConnected() bool {
	return a.profile != nil
}
