package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"denpicker/internal/catalog"
	"denpicker/internal/config"
	"denpicker/internal/eventbus"
	"denpicker/internal/selection"
	"denpicker/internal/storage"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath  string
	endpoint    string
	shape       string
	catalogFile string
	backend     string
	storagePath string
	verbose     bool
}

func (o *rootOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "Config file (default: user config dir)")
	flags.StringVar(&o.endpoint, "endpoint", "", "GraphQL endpoint serving the catalog")
	flags.StringVar(&o.shape, "shape", "", "Catalog shape: characters or species")
	flags.StringVar(&o.catalogFile, "catalog-file", "", "Read the catalog from a JSON file instead of the endpoint")
	flags.StringVar(&o.backend, "storage", "", "Storage backend: file, sqlite or memory")
	flags.StringVar(&o.storagePath, "storage-path", "", "Storage file for the file and sqlite backends")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log at debug level")
}

func (o *rootOptions) configService() config.ConfigService {
	if o.configPath != "" {
		return config.NewConfigServiceAt(o.configPath)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file and applies flag overrides. An unreadable
// file falls back to defaults with a warning on stderr.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	svc := o.configService()
	cfg, err := svc.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; using defaults\n", err)
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = o.endpoint
	}
	if flags.Changed("shape") {
		cfg.Shape = o.shape
	}
	if flags.Changed("catalog-file") {
		cfg.CatalogFile = o.catalogFile
	}
	if flags.Changed("storage") {
		cfg.Storage.Backend = o.backend
		if !flags.Changed("storage-path") {
			cfg.Storage.Path = config.DefaultStoragePath(o.backend)
		}
	}
	if flags.Changed("storage-path") {
		cfg.Storage.Path = o.storagePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger writes JSON logs to the configured file; the terminal belongs to the UI
func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	if cfg.Log.Path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{cfg.Log.Path}
	zcfg.ErrorOutputPaths = []string{cfg.Log.Path}

	level := zapcore.InfoLevel
	if cfg.Log.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func newSource(cfg *config.Config, logger *zap.Logger) catalog.Source {
	if cfg.CatalogFile != "" {
		return catalog.NewFileSource(cfg.CatalogFile, cfg.CatalogShape())
	}
	return catalog.NewGraphQLSource(cfg.Endpoint, cfg.CatalogShape(),
		catalog.WithTimeout(cfg.FetchTimeout.Duration),
		catalog.WithLogger(logger),
	)
}

// app is the wiring shared by the commands
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	bus     eventbus.EventBus
	storage storage.Storage
	store   *selection.Store
	source  catalog.Source
}

func newApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg, opts.verbose)
	if err != nil {
		return nil, err
	}

	st, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	bus := eventbus.New(logger)
	logEvents(bus, logger)

	logger.Info("starting",
		zap.String("shape", cfg.Shape),
		zap.String("storage", cfg.Storage.Backend),
		zap.String("storage_path", cfg.Storage.Path),
	)

	return &app{
		cfg:     cfg,
		logger:  logger,
		bus:     bus,
		storage: st,
		store: selection.NewStore(st,
			selection.WithKey(cfg.Storage.Key),
			selection.WithLogger(logger),
			selection.WithBus(bus),
		),
		source: newSource(cfg, logger),
	}, nil
}

// logEvents records domain events in the log file
func logEvents(bus eventbus.EventBus, logger *zap.Logger) {
	events := logger.Named("events")
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectionChangedEvent); ok {
			events.Info("selection changed",
				zap.String("added", ev.Added),
				zap.String("removed", ev.Removed),
				zap.Strings("items", ev.Items))
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectionClearedEvent); ok {
			events.Info("selection cleared", zap.Strings("previous", ev.Previous))
		}
	})
	bus.Subscribe(eventbus.EventStorageWriteFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.StorageWriteFailedEvent); ok {
			events.Error("selection not saved", zap.String("key", ev.Key), zap.Error(ev.Err))
		}
	})
}

func (a *app) Close() {
	a.bus.Close()
	if c, ok := a.storage.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.logger.Warn("failed to close storage", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// fetchCatalog runs one bounded catalog query outside the UI
func (a *app) fetchCatalog(ctx context.Context) (catalog.Index, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.FetchTimeout.Duration)
	defer cancel()

	entries, err := a.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.BuildIndex(entries), nil
}
