package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Config is the server configuration, loaded from a TOML file with
// defaults for everything except the bootstrap admin token.
type Config struct {
	ListenAddr string   `toml:"listen_addr"`
	Database   Database `toml:"database"`
	Vault      Vault    `toml:"vault"`

	// AdminToken seeds the initial admin capability on first start.
	AdminToken string `toml:"admin_token"`
}

// Database holds the PostgreSQL connection settings
type Database struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	SSLMode  string `toml:"ssl_mode"`
}

// Vault holds the governed vault parameters
type Vault struct {
	StalenessWindowSeconds int64  `toml:"staleness_window_seconds"`
	MaxLossFraction        string `toml:"max_loss_fraction"`
	LossPeriodSeconds      int64  `toml:"loss_period_seconds"`
	AbandonTimeoutSeconds  int64  `toml:"abandon_timeout_seconds"`
}

// Load reads and validates the configuration file
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		ListenAddr: ":8080",
		Database: Database{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "vault",
			SSLMode: "disable",
		},
		Vault: Vault{
			StalenessWindowSeconds: 60,
			MaxLossFraction:        "0.001",
			LossPeriodSeconds:      86400,
			AbandonTimeoutSeconds:  3600,
		},
	}
}

// Validate checks the configuration for obvious misconfiguration
func (c Config) Validate() error {
	if c.Vault.StalenessWindowSeconds <= 0 {
		return errors.New("staleness_window_seconds must be positive")
	}
	if c.Vault.LossPeriodSeconds <= 0 {
		return errors.New("loss_period_seconds must be positive")
	}
	if c.Vault.AbandonTimeoutSeconds <= 0 {
		return errors.New("abandon_timeout_seconds must be positive")
	}
	if c.AdminToken != "" {
		if _, err := uuid.Parse(c.AdminToken); err != nil {
			return fmt.Errorf("admin_token must be a UUID: %w", err)
		}
	}
	return nil
}

// StalenessWindow returns the staleness window as a duration
func (c Config) StalenessWindow() time.Duration {
	return time.Duration(c.Vault.StalenessWindowSeconds) * time.Second
}

// LossPeriod returns the loss governor period as a duration
func (c Config) LossPeriod() time.Duration {
	return time.Duration(c.Vault.LossPeriodSeconds) * time.Second
}

// AbandonTimeout returns the force-abandon timeout as a duration
func (c Config) AbandonTimeout() time.Duration {
	return time.Duration(c.Vault.AbandonTimeoutSeconds) * time.Second
}

// ConnString builds the lib/pq connection string, with environment
// variables taking precedence over the file (container friendly)
func (c Config) ConnString() string {
	if explicit := os.Getenv("DB_CONN_STR"); explicit != "" {
		return explicit
	}

	db := c.Database
	if v := os.Getenv("DB_HOST"); v != "" {
		db.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		db.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		db.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		db.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		db.Name = v
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode)
}
