package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	TransportNetHTTP  = "net/http"
	TransportFastHTTP = "fasthttp"

	envPrefix = "WIZARD_"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Endpoint   string
	SubmitPath string
	Transport  string
	Timeout    time.Duration
	ResetDelay time.Duration
	Log        LogConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// fileConfig mirrors Config with optional fields so a YAML file only
// overrides the keys it sets.
type fileConfig struct {
	Endpoint   string         `yaml:"endpoint"`
	SubmitPath string         `yaml:"submitPath"`
	Transport  string         `yaml:"transport"`
	Timeout    *time.Duration `yaml:"timeout"`
	ResetDelay *time.Duration `yaml:"resetDelay"`
	Log        struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func Default() Config {
	return Config{
		Endpoint:   "http://localhost:8080",
		SubmitPath: "/api/apply",
		Transport:  TransportNetHTTP,
		ResetDelay: 2 * time.Second,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load resolves configuration from defaults, the YAML file, the dotenv file
// and WIZARD_* environment variables, in that order. An explicit configPath
// must exist; without one the default candidates are tried and skipped when
// missing or unreadable. The result is not validated: callers apply their own
// overrides first and then call Validate.
func Load(configPath, envPath string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		parsed, err := readFile(configPath)
		if err != nil {
			return Config{}, err
		}
		merge(&cfg, parsed)
	} else {
		for _, path := range []string{"wizard.yaml", "configs/wizard.yaml"} {
			parsed, err := readFile(path)
			if err != nil {
				continue
			}
			merge(&cfg, parsed)
			break
		}
	}

	if envPath == "" {
		envPath = ".env"
	}
	// a missing dotenv file is normal; existing variables are never overwritten
	_ = godotenv.Load(envPath)

	ApplyEnvOverrides(&cfg)
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var parsed fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return parsed, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return parsed, fmt.Errorf("parse config %s: %w", path, err)
	}
	return parsed, nil
}

func merge(dst *Config, src fileConfig) {
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.SubmitPath != "" {
		dst.SubmitPath = src.SubmitPath
	}
	if src.Transport != "" {
		dst.Transport = src.Transport
	}
	if src.Timeout != nil {
		dst.Timeout = *src.Timeout
	}
	if src.ResetDelay != nil {
		dst.ResetDelay = *src.ResetDelay
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}
}

// ApplyEnvOverrides reads WIZARD_* variables. Durations that do not parse
// are ignored.
func ApplyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(envPrefix + key)); v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		raw := strings.TrimSpace(os.Getenv(envPrefix + key))
		if raw == "" {
			return
		}
		if d, err := time.ParseDuration(raw); err == nil {
			*dst = d
		}
	}

	setString("ENDPOINT", &cfg.Endpoint)
	setString("SUBMIT_PATH", &cfg.SubmitPath)
	setString("TRANSPORT", &cfg.Transport)
	setDuration("TIMEOUT", &cfg.Timeout)
	setDuration("RESET_DELAY", &cfg.ResetDelay)
	setString("LOG_LEVEL", &cfg.Log.Level)
	setString("LOG_FORMAT", &cfg.Log.Format)
}

func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q is not an absolute URL", ErrInvalidConfig, c.Endpoint)
	}
	switch c.Transport {
	case TransportNetHTTP, TransportFastHTTP:
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidConfig, c.Transport)
	}
	if c.Timeout < 0 || c.ResetDelay < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	return nil
}
