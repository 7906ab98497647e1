package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for the marketplace server.
// Values come from environment variables first and are overridden by the
// yaml file when a path is given.
type Config struct {
	Addr          string        `yaml:"addr"`
	GinMode       string        `yaml:"gin_mode"`
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenDuration time.Duration `yaml:"token_duration"`
	DatabasePath  string        `yaml:"database_path"`
	CORSOrigins   []string      `yaml:"cors_origins"`
	SecureCookies bool          `yaml:"secure_cookies"`
}

// Load builds the configuration from env defaults plus an optional yaml file
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("OPENHIRE_ADDR", ":8080"),
		GinMode:       getEnv("OPENHIRE_GIN_MODE", "release"),
		JWTSecret:     getEnv("OPENHIRE_JWT_SECRET", "open-secret"),
		TokenDuration: 240 * time.Hour,
		DatabasePath:  getEnv("OPENHIRE_DATABASE_PATH", "open-hire.db"),
		CORSOrigins:   []string{"http://localhost:5173"},
		SecureCookies: os.Getenv("OPENHIRE_ENV") == "production",
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
