package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the CLI configuration
type Config struct {
	DSN   string
	Debug bool
}

// LoadConfig loads configuration from various sources. The DSN
// resolves in order: the MORSEL_DSN environment variable, the dsn key
// of a .morsel config file, then DATABASE_URL (also honored from .env
// files).
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".morsel")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "morsel"))

	// Set environment variable prefix
	viper.SetEnvPrefix("MORSEL")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("debug", false)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		// Don't fail if .env can't be loaded
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		// Don't fail if .env.local can't be loaded
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		DSN:   viper.GetString("dsn"),
		Debug: viper.GetBool("debug"),
	}

	if cfg.DSN == "" {
		cfg.DSN = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("dsn", cfg.DSN)
	viper.Set("debug", cfg.Debug)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "morsel")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configPath, ".morsel.yaml")
	return viper.WriteConfigAs(configFile)
}
