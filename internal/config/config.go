package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort            = "3000"
	DefaultEnrichmentURL   = "http://localhost:8001"
	DefaultConnectTimeout  = 30 * time.Second
	DefaultResponseTimeout = 60 * time.Second
	DefaultRenderTimeout   = 60 * time.Second
	DefaultMaxUploadBytes  = 10 << 20
	DefaultConfigFile      = "configs/config.yaml"
)

// Config holds application configuration.
type Config struct {
	Port                      string
	Env                       string
	EnrichmentURL             string
	EnrichmentConnectTimeout  time.Duration
	EnrichmentResponseTimeout time.Duration
	TemplateDir               string
	TemplateStrict            bool
	ChromePath                string
	ChromeURL                 string
	RenderTimeout             time.Duration
	MaxUploadBytes            int64
	CORSAllowOrigins          []string
	LogLevel                  string
	LogFormat                 string
}

// fileConfig is the optional YAML file. Durations are written the way
// time.ParseDuration reads them ("45s", "2m").
type fileConfig struct {
	Port                      string   `yaml:"port"`
	Env                       string   `yaml:"env"`
	EnrichmentURL             string   `yaml:"enrichment_url"`
	EnrichmentConnectTimeout  string   `yaml:"enrichment_connect_timeout"`
	EnrichmentResponseTimeout string   `yaml:"enrichment_response_timeout"`
	TemplateDir               string   `yaml:"template_dir"`
	TemplateStrict            *bool    `yaml:"template_strict"`
	ChromePath                string   `yaml:"chrome_path"`
	ChromeURL                 string   `yaml:"chrome_url"`
	RenderTimeout             string   `yaml:"render_timeout"`
	MaxUploadBytes            int64    `yaml:"max_upload_bytes"`
	CORSAllowOrigins          []string `yaml:"cors_allow_origins"`
	LogLevel                  string   `yaml:"log_level"`
	LogFormat                 string   `yaml:"log_format"`
}

// Load reads configuration in three layers: a best-effort .env file, the
// optional YAML file named by CONFIG_FILE, then environment variables.
// Invalid durations and sizes fall back to their defaults with a warning.
func Load() (Config, error) {
	_ = godotenv.Load()

	var fc fileConfig
	path := getEnv("CONFIG_FILE", DefaultConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	env := normalizeEnv(getEnv("ENV", fc.Env))
	defaultFormat := "text"
	if env == "production" {
		defaultFormat = "json"
	}

	strict := false
	if fc.TemplateStrict != nil {
		strict = *fc.TemplateStrict
	}

	maxUpload := int64(DefaultMaxUploadBytes)
	if fc.MaxUploadBytes > 0 {
		maxUpload = fc.MaxUploadBytes
	}

	origins := []string{"*"}
	if len(fc.CORSAllowOrigins) > 0 {
		origins = fc.CORSAllowOrigins
	}
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		origins = splitAndTrim(raw)
	}

	return Config{
		Port:                      getEnv("PORT", orDefault(fc.Port, DefaultPort)),
		Env:                       env,
		EnrichmentURL:             getEnv("ENRICHMENT_URL", orDefault(fc.EnrichmentURL, DefaultEnrichmentURL)),
		EnrichmentConnectTimeout:  getDuration("ENRICHMENT_CONNECT_TIMEOUT", fc.EnrichmentConnectTimeout, DefaultConnectTimeout),
		EnrichmentResponseTimeout: getDuration("ENRICHMENT_RESPONSE_TIMEOUT", fc.EnrichmentResponseTimeout, DefaultResponseTimeout),
		TemplateDir:               getEnv("TEMPLATE_DIR", fc.TemplateDir),
		TemplateStrict:            getBool("TEMPLATE_STRICT", strict),
		ChromePath:                getEnv("CHROME_PATH", fc.ChromePath),
		ChromeURL:                 getEnv("CHROME_URL", fc.ChromeURL),
		RenderTimeout:             getDuration("RENDER_TIMEOUT", fc.RenderTimeout, DefaultRenderTimeout),
		MaxUploadBytes:            getSize("MAX_UPLOAD_BYTES", maxUpload),
		CORSAllowOrigins:          origins,
		LogLevel:                  getEnv("LOG_LEVEL", orDefault(fc.LogLevel, "info")),
		LogFormat:                 getEnv("LOG_FORMAT", orDefault(fc.LogFormat, defaultFormat)),
	}, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// getDuration reads key from the environment, then fileVal. Only positive
// durations are accepted.
func getDuration(key, fileVal string, def time.Duration) time.Duration {
	raw := getEnv(key, fileVal)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return d
}

func getBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return b
}

func getSize(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid size, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return n
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
