package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	RedisURL    string `yaml:"redis_url"`

	Solver SolverConfig `yaml:"solver"`
	Limits LimitsConfig `yaml:"limits"`
	HTTP   HTTPConfig   `yaml:"http"`
}

type SolverConfig struct {
	Exact ExactConfig `yaml:"exact"`
}

type ExactConfig struct {
	// "auto" probes the backend at startup, "off" always uses the heuristic.
	Mode             string        `yaml:"mode"`
	MaxStops         int           `yaml:"max_stops"`
	Timeout          time.Duration `yaml:"timeout"`
	HeldKarpMaxStops int           `yaml:"held_karp_max_stops"`
}

type LimitsConfig struct {
	MaxVehicles int `yaml:"max_vehicles"`
	MaxStops    int `yaml:"max_stops"`
}

type HTTPConfig struct {
	RateRPS         float64 `yaml:"rate_rps"`
	RateBurst       int     `yaml:"rate_burst"`
	CORSAllowOrigin string  `yaml:"cors_allow_origin"`
}

func Default() Config {
	return Config{
		Port: "8080",
		Solver: SolverConfig{Exact: ExactConfig{
			Mode:             "auto",
			MaxStops:         300,
			Timeout:          2 * time.Second,
			HeldKarpMaxStops: 0,
		}},
		Limits: LimitsConfig{
			MaxVehicles: 50,
			MaxStops:    1000,
		},
		HTTP: HTTPConfig{
			RateRPS:         20,
			RateBurst:       40,
			CORSAllowOrigin: "*",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (environment wins). A .env file in
// the working directory is loaded first when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Default()

	path := Get("CONFIG_FILE", "config.yaml")
	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("load config: parse %q: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = Get("PORT", cfg.Port)
	cfg.DatabaseURL = Get("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisURL = Get("REDIS_URL", cfg.RedisURL)
	cfg.Solver.Exact.Mode = Get("EXACT_SOLVER", cfg.Solver.Exact.Mode)
	cfg.HTTP.CORSAllowOrigin = Get("CORS_ALLOW_ORIGIN", cfg.HTTP.CORSAllowOrigin)

	ints := []struct {
		key string
		dst *int
	}{
		{"EXACT_MAX_STOPS", &cfg.Solver.Exact.MaxStops},
		{"HELD_KARP_MAX_STOPS", &cfg.Solver.Exact.HeldKarpMaxStops},
		{"MAX_VEHICLES", &cfg.Limits.MaxVehicles},
		{"MAX_STOPS", &cfg.Limits.MaxStops},
		{"RATE_BURST", &cfg.HTTP.RateBurst},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("load config: %s=%q: %w", e.key, v, err)
		}
		*e.dst = n
	}

	if v, ok := lookup("EXACT_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("load config: EXACT_TIMEOUT=%q: %w", v, err)
		}
		cfg.Solver.Exact.Timeout = d
	}

	if v, ok := lookup("RATE_RPS"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("load config: RATE_RPS=%q: %w", v, err)
		}
		cfg.HTTP.RateRPS = f
	}

	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Solver.Exact.Mode {
	case "auto", "off":
	default:
		return fmt.Errorf("config: solver.exact.mode must be auto or off, got %q", c.Solver.Exact.Mode)
	}

	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port must be non-empty")
	}
	if c.Solver.Exact.MaxStops < 1 {
		return fmt.Errorf("config: solver.exact.max_stops must be positive, got %d", c.Solver.Exact.MaxStops)
	}
	if c.Solver.Exact.Timeout <= 0 {
		return fmt.Errorf("config: solver.exact.timeout must be positive, got %s", c.Solver.Exact.Timeout)
	}
	if c.Solver.Exact.HeldKarpMaxStops < 0 || c.Solver.Exact.HeldKarpMaxStops > 16 {
		return fmt.Errorf("config: solver.exact.held_karp_max_stops must be between 0 and 16, got %d", c.Solver.Exact.HeldKarpMaxStops)
	}
	if c.Limits.MaxVehicles < 1 {
		return fmt.Errorf("config: limits.max_vehicles must be positive, got %d", c.Limits.MaxVehicles)
	}
	if c.Limits.MaxStops < 1 {
		return fmt.Errorf("config: limits.max_stops must be positive, got %d", c.Limits.MaxStops)
	}
	if c.HTTP.RateRPS < 0 || c.HTTP.RateBurst < 0 {
		return errors.New("config: http rate limits must not be negative")
	}
	if c.HTTP.RateRPS > 0 && c.HTTP.RateBurst < 1 {
		return errors.New("config: http.rate_burst must be at least 1 when rate limiting is on")
	}

	return nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return fallback
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
