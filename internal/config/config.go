// ABOUTME: Configuration loading with viper and dotenv support.
// ABOUTME: File is optional; every key falls back to SEHAT_* env vars.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sehatsense/sehat/internal/store"
)

// Config holds all tool configuration.
type Config struct {
	AI struct {
		APIKey      string
		Model       string
		VisionModel string
	}
	DataDir string
	Debug   bool
}

// Load reads configuration from (in order of precedence) environment
// variables, an optional sehat.yaml, and built-in defaults. A missing
// config file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("sehat")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(configDir())

	v.SetDefault("AI.APIKey", "")
	v.SetDefault("AI.Model", "gpt-4o-mini")
	v.SetDefault("AI.VisionModel", "gpt-4o")
	v.SetDefault("DataDir", store.DataDir())
	v.SetDefault("Debug", false)

	v.SetEnvPrefix("SEHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Tolerate only a missing file; a malformed one is a real error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// The key may also come from the conventional OpenAI variable.
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	cfg.DataDir = ExpandPath(cfg.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = store.DataDir()
	}

	return &cfg, nil
}

func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sehat")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
