package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/projectinsights/internal/pagination"
)

// DefaultSourceURL is the Kickstarter projects data set used when no URL is configured.
const DefaultSourceURL = "https://raw.githubusercontent.com/saaslabsco/frontend-assignment/refs/heads/master/frontend-assignment.json"

// Defaults for the remaining sections.
const (
	DefaultSourceTimeout = 30 * time.Second
	DefaultOutputFormat  = "table"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	configFileName       = "config.yaml"
	configDirName        = ".projectinsights"
)

// Environment variable overrides.
const (
	EnvHome         = "PROJECTINSIGHTS_HOME"
	EnvURL          = "PROJECTINSIGHTS_URL"
	EnvLogLevel     = "PROJECTINSIGHTS_LOG_LEVEL"
	EnvOutputFormat = "PROJECTINSIGHTS_OUTPUT_FORMAT"
)

// Validation errors.
var (
	ErrEmptySourceURL            = errors.New("source.url cannot be empty")
	ErrNegativeTimeout           = errors.New("source.timeout cannot be negative")
	ErrInvalidOutputFormat       = errors.New("output.default_format must be one of table, json, ndjson")
	ErrUnknownKey                = errors.New("unknown configuration key")
	ErrDefaultPageSizeNotOffered = errors.New("table.page_size must be one of table.page_size_options")
)

// Config is the projectinsights configuration file.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Table   TableConfig   `yaml:"table"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// SourceConfig describes where the project list is fetched from.
type SourceConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// TableConfig holds the paginated table defaults.
type TableConfig struct {
	PageSize        int                        `yaml:"page_size"`
	PageSizeOptions pagination.PageSizeOptions `yaml:"page_size_options"`
	MaxVisiblePages int                        `yaml:"max_visible_pages"`
	ShowPagination  bool                       `yaml:"show_pagination"`
}

// OutputConfig holds output preferences.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: DefaultSourceTimeout,
		},
		Table: TableConfig{
			PageSize:        pagination.DefaultPageSize,
			PageSizeOptions: pagination.DefaultPageSizeOptions(),
			MaxVisiblePages: pagination.DefaultMaxVisiblePages,
			ShowPagination:  true,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New loads the configuration file on top of the defaults and applies
// environment overrides. A missing or unreadable file leaves the defaults in
// place; parse errors are logged and ignored.
func New() *Config {
	cfg := Default()

	path, err := DefaultConfigPath()
	if err == nil {
		cfg.configPath = path
		if loadErr := cfg.Load(); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			logger := GetLogger()
			logger.Warn().
				Str("component", "config").
				Err(loadErr).
				Str("path", path).
				Msg("failed to load config file, using defaults")
		}
	}

	cfg.applyEnv()
	return cfg
}

// Load reads the config file at ConfigPath into cfg.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes cfg to ConfigPath, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		c.configPath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(c.configPath, data, 0o600)
}

// ConfigPath returns the file this config is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Load and Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvURL); v != "" {
		c.Source.URL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
}

// Validate checks the configuration for semantic errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source.URL) == "" {
		return ErrEmptySourceURL
	}
	if c.Source.Timeout < 0 {
		return ErrNegativeTimeout
	}
	if err := c.Table.PageSizeOptions.Validate(); err != nil {
		return fmt.Errorf("table.page_size_options: %w", err)
	}
	if !c.Table.PageSizeOptions.Contains(c.Table.PageSize) {
		return fmt.Errorf("%w: got %d, want one of %s",
			ErrDefaultPageSizeNotOffered, c.Table.PageSize, c.Table.PageSizeOptions)
	}
	if c.Table.MaxVisiblePages < pagination.MinMaxVisiblePages {
		return fmt.Errorf("table.max_visible_pages: %w", pagination.ErrInvalidMaxVisiblePages)
	}
	if !slices.Contains(validOutputFormats, c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	return nil
}

//nolint:gochecknoglobals // Lookup table.
var validOutputFormats = []string{"table", "json", "ndjson"}

// Keys returns every settable dotted key in display order.
func Keys() []string {
	return []string{
		"source.url",
		"source.timeout",
		"table.page_size",
		"table.page_size_options",
		"table.max_visible_pages",
		"table.show_pagination",
		"output.default_format",
		"logging.level",
		"logging.format",
		"logging.file",
	}
}

// Get returns the string form of a dotted key such as "table.page_size".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "source.url":
		return c.Source.URL, nil
	case "source.timeout":
		return c.Source.Timeout.String(), nil
	case "table.page_size":
		return strconv.Itoa(c.Table.PageSize), nil
	case "table.page_size_options":
		return c.Table.PageSizeOptions.String(), nil
	case "table.max_visible_pages":
		return strconv.Itoa(c.Table.MaxVisiblePages), nil
	case "table.show_pagination":
		return strconv.FormatBool(c.Table.ShowPagination), nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value and assigns it to the dotted key.
//
//nolint:gocognit,cyclop // One case per key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "source.url":
		c.Source.URL = value
	case "source.timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		c.Source.Timeout = d
	case "table.page_size", "table.max_visible_pages":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		if key == "table.page_size" {
			c.Table.PageSize = n
		} else {
			c.Table.MaxVisiblePages = n
		}
	case "table.page_size_options":
		opts, err := parseOptions(value)
		if err != nil {
			return fmt.Errorf("invalid list for %s: %w", key, err)
		}
		c.Table.PageSizeOptions = opts
	case "table.show_pagination":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		c.Table.ShowPagination = b
	case "output.default_format":
		c.Output.DefaultFormat = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.file":
		c.Logging.File = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseOptions(value string) (pagination.PageSizeOptions, error) {
	fields := strings.Split(value, ",")
	opts := make(pagination.PageSizeOptions, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		opts = append(opts, n)
	}
	return opts, nil
}

// DefaultConfigPath returns the location of the configuration file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
