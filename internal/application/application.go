package application

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/samsconf/internal/config"
	"github.com/eugenenazirov/samsconf/internal/dbconn"
	"github.com/eugenenazirov/samsconf/internal/samsconfig"
)

// ErrNoEngines is returned when the binary was built without any database backend.
var ErrNoEngines = errors.New("no database engine is enabled in this build")

// Option configures New.
type Option func(*options)

type options struct {
	registry *dbconn.Registry
}

// WithRegistry overrides the compiled-in database backends (primarily for tests).
func WithRegistry(registry *dbconn.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// App encapsulates the application dependencies.
type App struct {
	registry *dbconn.Registry
	store    *samsconfig.Store
	logger   *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	o := options{registry: dbconn.DefaultRegistry()}
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.registry.Enabled()) == 0 {
		return nil, ErrNoEngines
	}

	store := samsconfig.New(
		samsconfig.WithPath(cfg.ConfFile),
		samsconfig.WithRegistry(o.registry),
		samsconfig.WithLogger(logger.Named("samsconfig")),
	)

	return &App{
		registry: o.registry,
		store:    store,
		logger:   logger,
	}, nil
}

// Start loads the configuration store. Callers should invoke it once at
// startup, before handing the store to other components.
func (a *App) Start(ctx context.Context) error {
	a.logger.Info("loading configuration", zap.String("path", a.store.Path()))
	if err := a.store.Load(ctx); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.logger.Info("configuration loaded", zap.Stringer("engine", a.store.Engine()))
	return nil
}

// Store returns the configuration store.
func (a *App) Store() *samsconfig.Store {
	return a.store
}

// Engines returns the database engines compiled into this build.
func (a *App) Engines() []dbconn.Engine {
	return a.registry.Enabled()
}
