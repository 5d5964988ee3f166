package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
	pkgconfig "github.com/linhqtruong/productcatalogmanager/pkg/config"
)

// Config holds all configuration for the admin console and the
// development stub backend.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Catalog API
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	// Pagination
	DefaultPageSize int   `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int   `env:"MAX_PAGE_SIZE" envDefault:"200"`
	PageSizeOptions []int `env:"PAGE_SIZE_OPTIONS" envDefault:"5,10,20,50,100,200" envSeparator:","`

	// Search. Min/max lengths are advisory display text only; input is
	// never rejected against them before being sent.
	SearchDebounce  time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"400ms"`
	MinSearchLength int           `env:"MIN_SEARCH_LENGTH" envDefault:"1"`
	MaxSearchLength int           `env:"MAX_SEARCH_LENGTH" envDefault:"100"`

	// Default sort
	DefaultSortField     string `env:"DEFAULT_SORT_FIELD" envDefault:"key"`
	DefaultSortDirection string `env:"DEFAULT_SORT_DIRECTION" envDefault:"asc"`

	// Notifications and error display
	NotificationAutoHide time.Duration `env:"NOTIFICATION_AUTO_HIDE" envDefault:"5s"`
	ShowErrorDetails     bool          `env:"SHOW_ERROR_DETAILS" envDefault:"false"`
	EnableDebugLogging   bool          `env:"ENABLE_DEBUG_LOGGING" envDefault:"false"`

	// Stub backend
	StubHTTPPort int `env:"STUB_HTTP_PORT" envDefault:"8080"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load admin console config: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration invariants. Called by pkgconfig.Load.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API base URL must not be empty")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("invalid default page size: %d", c.DefaultPageSize)
	}
	if len(c.PageSizeOptions) == 0 {
		return fmt.Errorf("page size options must not be empty")
	}
	for _, s := range c.PageSizeOptions {
		if s < 1 || s > c.MaxPageSize {
			return fmt.Errorf("page size option %d outside 1..%d", s, c.MaxPageSize)
		}
	}
	if !slices.Contains(c.PageSizeOptions, c.DefaultPageSize) {
		return fmt.Errorf("default page size %d not among options %v", c.DefaultPageSize, c.PageSizeOptions)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("search debounce must not be negative")
	}
	if _, err := catalog.ParseSortField(c.DefaultSortField); err != nil {
		return err
	}
	if _, err := catalog.ParseSortDirection(c.DefaultSortDirection); err != nil {
		return err
	}
	if c.StubHTTPPort < 1 || c.StubHTTPPort > 65535 {
		return fmt.Errorf("invalid stub HTTP port: %d", c.StubHTTPPort)
	}
	return nil
}

// SortDefaults returns the parsed default sort field and direction.
// Validate guarantees both parse.
func (c *Config) SortDefaults() (catalog.SortField, catalog.SortDirection) {
	f, _ := catalog.ParseSortField(c.DefaultSortField)
	d, _ := catalog.ParseSortDirection(c.DefaultSortDirection)
	return f, d
}
