package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lingtangg/weather-summary/internal/weather"
)

type AppConfig struct {
	// ReloadInterval controls how often configured sources are reloaded.
	ReloadInterval time.Duration

	// HTTPTimeout bounds each request to a remote source.
	HTTPTimeout time.Duration

	// Sources to load at startup and on every reload.
	Sources []weather.Source

	StoreMaxDatasets int // 0 = unlimited

	Port string
}

// sourcesFile is the layout of WEATHER_SOURCES_FILE.
type sourcesFile struct {
	Sources []weather.Source `yaml:"sources" validate:"dive"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	interval, err := time.ParseDuration(getenvDefault("RELOAD_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RELOAD_INTERVAL: %w", err)
	}
	cfg.ReloadInterval = interval

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.StoreMaxDatasets = getenvInt("STORE_MAX_DATASETS", 32)
	cfg.Port = getenvDefault("PORT", "8080")

	srcs, err := parseSources(os.Getenv("WEATHER_SOURCES"))
	if err != nil {
		return nil, err
	}
	if path := os.Getenv("WEATHER_SOURCES_FILE"); path != "" {
		fileSrcs, err := LoadSourcesFile(path)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, fileSrcs...)
	}
	cfg.Sources = srcs

	return cfg, nil
}

// parseSources reads comma separated name=source pairs.
func parseSources(raw string) ([]weather.Source, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var srcs []weather.Source
	for _, pair := range strings.Split(raw, ",") {
		name, loc, ok := strings.Cut(strings.TrimSpace(pair), "=")
		src := weather.Source{Name: strings.TrimSpace(name), Location: strings.TrimSpace(loc)}
		if !ok || validate.Struct(src) != nil {
			return nil, fmt.Errorf("invalid WEATHER_SOURCES entry %q: want name=source", pair)
		}
		srcs = append(srcs, src)
	}
	return srcs, nil
}

// LoadSourcesFile reads a YAML sources file and expands environment variables.
func LoadSourcesFile(path string) ([]weather.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var f sourcesFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &f); err != nil {
		return nil, fmt.Errorf("parse sources yaml: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("validate sources file: %w", err)
	}
	return f.Sources, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
