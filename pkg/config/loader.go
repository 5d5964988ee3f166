package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Validator is implemented by configuration structs that carry
// cross-field invariants which env tags alone cannot express.
type Validator interface {
	Validate() error
}

// Load parses environment variables into the provided struct using
// `env` tags. If the struct implements Validator, its invariants are
// checked after parsing.
//
// Example:
//
//	type Config struct {
//	    BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
//	    Debug   bool   `env:"ENABLE_DEBUG_LOGGING" envDefault:"false"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if v, ok := cfg.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}
	return nil
}
