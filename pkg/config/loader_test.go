package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseURL string        `env:"TEST_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"5s"`
	Sizes   []int         `env:"TEST_SIZES" envDefault:"5,10,20" envSeparator:","`
}

func TestLoadDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(&cfg))
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []int{5, 10, 20}, cfg.Sizes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_BASE_URL", "http://example.com")
	t.Setenv("TEST_TIMEOUT", "250ms")

	var cfg testConfig
	require.NoError(t, Load(&cfg))
	assert.Equal(t, "http://example.com", cfg.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

type validatedConfig struct {
	Port int `env:"TEST_PORT" envDefault:"0"`
}

func (c *validatedConfig) Validate() error {
	if c.Port < 1 {
		return errors.New("port must be positive")
	}
	return nil
}

func TestLoadRunsValidator(t *testing.T) {
	var cfg validatedConfig
	err := Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port must be positive")

	t.Setenv("TEST_PORT", "8080")
	require.NoError(t, Load(&cfg))
	assert.Equal(t, 8080, cfg.Port)
}
