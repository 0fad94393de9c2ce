package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env    string
	Log    LogConfig
	Output OutputConfig
}

type LogConfig struct {
	Level    string
	Mode     string
	Encoding string
}

// OutputConfig controls where rendered command results are written.
// Suffix is appended to the input file's base name to form the output
// file path.
type OutputConfig struct {
	Suffix string
}

func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Env: getEnv("ENV", "development"),
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Mode:     getEnv("LOG_MODE", "development"),
			Encoding: getEnv("LOG_ENCODING", "console"),
		},
		Output: OutputConfig{
			Suffix: getEnv("OUTPUT_SUFFIX", "_output_file.txt"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}

	if c.Output.Suffix == "" {
		return fmt.Errorf("output suffix is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
