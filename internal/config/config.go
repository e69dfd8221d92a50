package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort          = 8080
	defaultMaxUploadMB   = 32
	defaultHighThreshold = 70.0
	defaultMidThreshold  = 40.0
	defaultBasemap       = "CartoDB positron"
)

// Config holds environment-driven settings for the mapping service.
type Config struct {
	Port        int
	BearerToken string

	// DataFile is an optional dataset to preload at startup; WatchData
	// reloads it when the file changes.
	DataFile  string
	WatchData bool

	MaxUploadBytes int64

	// FallbackColors enables legacy TO-status/anomaly-score coloring for
	// records without a recognized inspection status.
	FallbackColors bool
	HighThreshold  float64
	MidThreshold   float64

	Basemap        string
	ClusterEnabled bool
	HeatmapEnabled bool
}

// mapOptionsFile is the optional YAML file overriding map presentation
// settings (MAP_OPTIONS_FILE).
type mapOptionsFile struct {
	Basemap    string `yaml:"basemap"`
	Cluster    *bool  `yaml:"cluster"`
	Heatmap    *bool  `yaml:"heatmap"`
	Thresholds struct {
		High *float64 `yaml:"high"`
		Mid  *float64 `yaml:"mid"`
	} `yaml:"thresholds"`
}

// Load reads configuration from environment variables (optionally .env) and
// the optional map-options YAML file.
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:           defaultPort,
		MaxUploadBytes: defaultMaxUploadMB << 20,
		HighThreshold:  defaultHighThreshold,
		MidThreshold:   defaultMidThreshold,
		Basemap:        defaultBasemap,
		ClusterEnabled: true,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")
	cfg.DataFile = strings.TrimSpace(os.Getenv("DATA_FILE"))
	cfg.WatchData = boolEnv("WATCH_DATA")
	cfg.FallbackColors = boolEnv("SCORE_FALLBACK")

	if mbStr := os.Getenv("MAX_UPLOAD_MB"); mbStr != "" {
		mb, err := strconv.Atoi(mbStr)
		if err != nil || mb <= 0 {
			return cfg, fmt.Errorf("invalid MAX_UPLOAD_MB: %s", mbStr)
		}
		cfg.MaxUploadBytes = int64(mb) << 20
	}

	if v := os.Getenv("SCORE_HIGH_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid SCORE_HIGH_THRESHOLD: %s", v)
		}
		cfg.HighThreshold = f
	}
	if v := os.Getenv("SCORE_MID_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid SCORE_MID_THRESHOLD: %s", v)
		}
		cfg.MidThreshold = f
	}
	if cfg.MidThreshold > cfg.HighThreshold {
		return cfg, fmt.Errorf("SCORE_MID_THRESHOLD (%v) exceeds SCORE_HIGH_THRESHOLD (%v)",
			cfg.MidThreshold, cfg.HighThreshold)
	}

	if v := os.Getenv("BASEMAP"); v != "" {
		cfg.Basemap = v
	}

	if path := os.Getenv("MAP_OPTIONS_FILE"); path != "" {
		if err := cfg.applyMapOptions(path); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func (c *Config) applyMapOptions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read map options: %w", err)
	}
	var opts mapOptionsFile
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return fmt.Errorf("parse map options: %w", err)
	}

	if opts.Basemap != "" {
		c.Basemap = opts.Basemap
	}
	if opts.Cluster != nil {
		c.ClusterEnabled = *opts.Cluster
	}
	if opts.Heatmap != nil {
		c.HeatmapEnabled = *opts.Heatmap
	}
	if opts.Thresholds.High != nil {
		c.HighThreshold = *opts.Thresholds.High
	}
	if opts.Thresholds.Mid != nil {
		c.MidThreshold = *opts.Thresholds.Mid
	}
	return nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func boolEnv(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	return v == "1" || strings.EqualFold(v, "true")
}
