package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"rate_relay/internal/domain"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultUserAgent is a browser-like user agent string sent on archive
	// requests, some bank frontends reject obvious bot agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	defaultBankURL        = "https://api.privatbank.ua/p24api/exchange_rates?date="
	defaultMaxArchiveDays = 10
)

// Config holds the full application configuration. Loaded from YAML, then
// selectively overridden from the environment.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	Bank struct {
		URL              string   `yaml:"url"`
		TimeoutSec       int      `yaml:"timeout_sec"`
		MaxArchiveDays   int      `yaml:"max_archive_days"`
		FetchConcurrency int      `yaml:"fetch_concurrency"`
		BaseCurrencies   []string `yaml:"base_currencies"`
		AllCurrencies    []string `yaml:"all_currencies"`
	} `yaml:"bank"`

	Storage struct {
		DBPath string `yaml:"db_path"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Bank.URL == "" {
		c.Bank.URL = defaultBankURL
	}
	if c.Bank.TimeoutSec <= 0 {
		c.Bank.TimeoutSec = 10
	}
	if c.Bank.MaxArchiveDays <= 0 {
		c.Bank.MaxArchiveDays = defaultMaxArchiveDays
	}
	if c.Bank.FetchConcurrency <= 0 {
		c.Bank.FetchConcurrency = 4
	}
	if len(c.Bank.BaseCurrencies) == 0 {
		c.Bank.BaseCurrencies = []string{"EUR", "USD"}
	}
	if len(c.Bank.AllCurrencies) == 0 {
		c.Bank.AllCurrencies = []string{"EUR", "USD", "CHF", "CZK", "GBP", "PLN"}
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = "storage/relay.db"
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Bank.URL, "http://") && !strings.HasPrefix(c.Bank.URL, "https://") {
		return fmt.Errorf("invalid bank URL: %s", c.Bank.URL)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Bank.MaxArchiveDays < 0 {
		return fmt.Errorf("max archive days cannot be negative: %d", c.Bank.MaxArchiveDays)
	}
	if len(c.Bank.BaseCurrencies) == 0 {
		return fmt.Errorf("at least one base currency is required")
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// overrideWithEnv lets deployment environments override file settings.
func overrideWithEnv(cfg *Config) {
	if url := os.Getenv("RELAY_BANK_URL"); url != "" {
		cfg.Bank.URL = url
	}
	if host := os.Getenv("RELAY_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("RELAY_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if path := os.Getenv("RELAY_DB_PATH"); path != "" {
		cfg.Storage.DBPath = path
	}
}
