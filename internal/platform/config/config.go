package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const envAPIURL = "STUDYHALL_API_URL"

type Config struct {
	APIBaseURL string        `yaml:"api_base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	LogLevel   string        `yaml:"log_level"`

	DataDir string `yaml:"-"`
}

func defaults(dataDir string) Config {
	return Config{
		APIBaseURL: "http://localhost:5000/api",
		Timeout:    30 * time.Second,
		LogLevel:   "info",
		DataDir:    dataDir,
	}
}

// New loads config.yaml from the data directory, applying defaults for any
// missing field. The STUDYHALL_API_URL environment variable wins over the file.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := defaults(dataDir)

	b, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.DataDir = dataDir
	}
	if url := os.Getenv(envAPIURL); url != "" {
		cfg.APIBaseURL = url
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return cfg, nil
}

func (c Config) CredentialsPath() string {
	return filepath.Join(c.DataDir, "credentials.yaml")
}

func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "studyhall.log")
}
