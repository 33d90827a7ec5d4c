package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"denpicker/internal/catalog"
	"denpicker/internal/selection"
	"denpicker/internal/storage"
)

// AppName is used for the config directory and default file names
const AppName = "denpicker"

// DefaultEndpoint is the public GraphQL endpoint serving the characters shape
const DefaultEndpoint = "https://rickandmortyapi.com/graphql"

// Config represents the application configuration
type Config struct {
	Version      int             `toml:"version"`
	Endpoint     string          `toml:"endpoint"`
	Shape        string          `toml:"shape"`
	CatalogFile  string          `toml:"catalog_file,omitempty"` // offline catalog, replaces Endpoint
	ImageURL     string          `toml:"image_url"`              // template with an {id} placeholder
	FetchTimeout Duration        `toml:"fetch_timeout"`
	Storage      StorageSettings `toml:"storage"`
	Log          LogSettings     `toml:"log"`
	UISettings   UISettings      `toml:"ui"`
}

// StorageSettings selects where the selection is persisted
type StorageSettings struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	Key     string `toml:"key"`
}

// LogSettings configures the log file
type LogSettings struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowAvatars bool `toml:"show_avatars"`
}

// Duration is a time.Duration written as a Go duration string
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the default config location
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(Dir(), "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Dir returns the per-user config directory for the app
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, AppName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks enumerated and numeric settings
func (c *Config) Validate() error {
	if _, err := catalog.ParseShape(c.Shape); err != nil {
		return err
	}
	switch c.Storage.Backend {
	case storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend != storage.BackendMemory && c.Storage.Path == "" {
		return errors.New("storage path is required")
	}
	if c.FetchTimeout.Duration <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.Endpoint == "" && c.CatalogFile == "" {
		return errors.New("either endpoint or catalog_file is required")
	}
	return nil
}

// CatalogShape returns the parsed catalog shape
func (c *Config) CatalogShape() catalog.Shape {
	shape, err := catalog.ParseShape(c.Shape)
	if err != nil {
		return catalog.ShapeCharacters
	}
	return shape
}

// ImageTemplate returns the configured image template or the shape's default
func (c *Config) ImageTemplate() string {
	if c.ImageURL != "" {
		return c.ImageURL
	}
	return catalog.DefaultImageTemplate(c.CatalogShape())
}

// DefaultStoragePath returns the default file for a storage backend
func DefaultStoragePath(backend string) string {
	switch backend {
	case storage.BackendSQLite:
		return filepath.Join(Dir(), "den.db")
	case storage.BackendMemory:
		return ""
	default:
		return filepath.Join(Dir(), "den.json")
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		Endpoint:     DefaultEndpoint,
		Shape:        string(catalog.ShapeCharacters),
		FetchTimeout: Duration{15 * time.Second},
		Storage: StorageSettings{
			Backend: storage.BackendFile,
			Path:    DefaultStoragePath(storage.BackendFile),
			Key:     selection.DefaultKey,
		},
		Log: LogSettings{
			Path:  filepath.Join(Dir(), AppName+".log"),
			Level: "info",
		},
		UISettings: UISettings{
			ShowAvatars: true,
		},
	}
}
