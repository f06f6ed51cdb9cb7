package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/kittygram-client/internal/adapter"
	"github.com/MKhiriev/kittygram-client/internal/config"
	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/internal/session"
	"github.com/MKhiriev/kittygram-client/internal/store"
	"github.com/MKhiriev/kittygram-client/internal/tui"
	"github.com/MKhiriev/kittygram-client/internal/validators"
	"github.com/MKhiriev/kittygram-client/models"
)

// App owns every long-lived dependency of one client process.
type App struct {
	cfg         *config.ClientConfig
	logger      *logger.Logger
	storages    *store.ClientStorages
	session     *session.Session
	currentUser *session.CurrentUser
	services    *service.ClientServices
	buildInfo   models.AppBuildInfo
}

// NewApp reads the configuration (flags may be nil), opens the token store,
// restores the saved session and builds the services.
func NewApp(ctx context.Context, flags *pflag.FlagSet, buildInfo models.AppBuildInfo) (*App, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("kittygram-client", cfg.Log.File, cfg.Log.Level)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sess := session.New(storages.Tokens, log)
	if err = sess.Load(ctx); err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, sess, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create record service adapter: %w", err)
	}

	currentUser := session.NewCurrentUser(sess, catalog, log)
	services := service.NewClientServices(catalog, sess, currentUser, validators.NewFormValidator(), log)

	log.Info().
		Str("address", cfg.Adapter.HTTPAddress).
		Bool("authenticated", sess.IsAuthenticated()).
		Msg("client started")

	return &App{
		cfg:         cfg,
		logger:      log,
		storages:    storages,
		session:     sess,
		currentUser: currentUser,
		services:    services,
		buildInfo:   buildInfo,
	}, nil
}

// Services exposes the service layer to non-interactive commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) Logger() *logger.Logger {
	return a.logger
}

// Run shows the terminal UI starting at route ("" opens the catalog) and
// blocks until it exits. Quitting on the user's request is not an error.
func (a *App) Run(ctx context.Context, route string) error {
	ui, err := tui.New(a.services, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	if err = ui.Run(ctx, route); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Close detaches the current-user cache from the session and releases the
// token store.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if a.currentUser != nil {
		a.currentUser.Close()
	}
	return a.storages.Close()
}
