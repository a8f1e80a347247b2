// Package config collects the external settings a run needs into an explicit
// struct, loaded once at process start. Settings come from the environment,
// optionally seeded from a .env file, and are validated per command before
// any I/O occurs.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// fetch
	SheetID   string
	SheetName string

	// load (replace mode)
	ProjectRef    string
	ManagementKey string
	DSN           string

	// upsert
	URL       string
	Key       string
	PK        string
	ColumnMap map[string]string

	// shared
	Table string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first if present; its absence is not an
// error.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := Config{
		SheetID:       os.Getenv("GOOGLE_SHEET_ID"),
		SheetName:     os.Getenv("GOOGLE_SHEET_NAME"),
		ProjectRef:    os.Getenv("SUPABASE_PROJECT_REF"),
		ManagementKey: os.Getenv("SUPABASE_MANAGEMENT_KEY"),
		DSN:           os.Getenv("SUPABASE_DB_DSN"),
		URL:           os.Getenv("SUPABASE_URL"),
		Key:           os.Getenv("SUPABASE_KEY"),
		PK:            os.Getenv("SUPABASE_PK"),
		Table:         os.Getenv("SUPABASE_TABLE"),
		ColumnMap:     map[string]string{},
	}

	if cfg.SheetName == "" {
		cfg.SheetName = "Sheet1"
	}

	if raw := os.Getenv("COLUMN_MAP"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.ColumnMap); err != nil {
			return nil, fmt.Errorf("invalid COLUMN_MAP (%v)", err)
		}
	}

	return &cfg, nil
}

// ValidateLoad checks the settings the replace-mode load needs. With a DSN
// configured the management API credentials are not required - the SQL goes
// over a direct connection instead.
func (c *Config) ValidateLoad() error {
	if c.Table == "" {
		return fmt.Errorf("SUPABASE_TABLE is not set")
	}

	if c.DSN != "" {
		return nil
	}

	if c.ProjectRef == "" {
		return fmt.Errorf("SUPABASE_PROJECT_REF is not set")
	}

	if c.ManagementKey == "" {
		return fmt.Errorf("SUPABASE_MANAGEMENT_KEY is not set")
	}

	return nil
}

// ValidateUpsert checks the settings the upsert-mode load needs.
func (c *Config) ValidateUpsert() error {
	if c.URL == "" {
		return fmt.Errorf("SUPABASE_URL is not set")
	}

	if c.Key == "" {
		return fmt.Errorf("SUPABASE_KEY is not set")
	}

	if c.Table == "" {
		return fmt.Errorf("SUPABASE_TABLE is not set")
	}

	if c.PK == "" {
		return fmt.Errorf("SUPABASE_PK is not set")
	}

	return nil
}
