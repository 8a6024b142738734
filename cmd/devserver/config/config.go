package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	appconfig "labelsmobile/config"
	"labelsmobile/internal/bootstrap"

	"github.com/goccy/go-yaml"
)

const (
	defaultPort         = 8000
	defaultEnvFile      = "../.env"
	defaultTemplateFile = "../supabase_config_example.env"

	envVarPort      = "LABELS_DEV_PORT"
	envVarStaticDir = "LABELS_STATIC_DIR"
	envVarEnvFile   = "LABELS_ENV_FILE"
	envVarTemplate  = "LABELS_ENV_TEMPLATE"
	envVarBrowser   = "LABELS_BROWSER"

	configFileName = ".labelsmobile/config.yml"
)

// Config holds the dev server configuration
type Config struct {
	Port         int       `yaml:"port"`
	StaticDir    string    `yaml:"static_dir"`
	EnvFile      string    `yaml:"env_file"`
	TemplateFile string    `yaml:"env_template"`
	Browser      string    `yaml:"browser"`
	Fallback     Fallbacks `yaml:"fallback"`
}

// Fallbacks override the credentials written into a freshly created .env
type Fallbacks struct {
	URL     string `yaml:"url"`
	AnonKey string `yaml:"anon_key"`
}

// Load loads configuration from ~/.labelsmobile/config.yml when present
func Load() (*Config, error) {
	cfg := &Config{}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	if err := LoadFile(filepath.Join(homeDir, configFileName), cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads YAML from path into cfg
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// GetPort returns the port with priority: env var > config file > default
func (c *Config) GetPort() int {
	if v := os.Getenv(envVarPort); v != "" {
		if port, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return port
		}
	}
	if c.Port != 0 {
		return c.Port
	}
	return defaultPort
}

// GetStaticDir defaults to the directory holding the binary
func (c *Config) GetStaticDir() string {
	return pick(os.Getenv(envVarStaticDir), c.StaticDir, appconfig.ExecutableDir())
}

// GetEnvFile resolves relative paths against the static directory
func (c *Config) GetEnvFile() string {
	return c.resolve(pick(os.Getenv(envVarEnvFile), c.EnvFile, defaultEnvFile))
}

func (c *Config) GetTemplateFile() string {
	return c.resolve(pick(os.Getenv(envVarTemplate), c.TemplateFile, defaultTemplateFile))
}

func (c *Config) GetBrowser() string {
	return pick(os.Getenv(envVarBrowser), c.Browser, "")
}

func (c *Config) GetFallbacks() bootstrap.Fallbacks {
	fb := bootstrap.DefaultFallbacks()
	if c.Fallback.URL != "" {
		fb.URL = c.Fallback.URL
	}
	if c.Fallback.AnonKey != "" {
		fb.AnonKey = c.Fallback.AnonKey
	}
	return fb
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.GetStaticDir(), path)
}

func pick(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
