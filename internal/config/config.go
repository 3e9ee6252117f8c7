// Package config loads settings for every server from config.yaml, with
// environment variables taking precedence.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultPath = "config.yaml"

type Config struct {
	App          App          `yaml:"app"`
	Log          Log          `yaml:"log"`
	Orchestrator Orchestrator `yaml:"orchestrator"`
	Agents       Agents       `yaml:"agents"`
	Redis        Redis        `yaml:"redis"`
}

type App struct {
	Name    string `yaml:"name" env:"APP_NAME" env-default:"a2a-holiday-booking"`
	Version string `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type Orchestrator struct {
	Port             string        `yaml:"port" env:"ORCHESTRATOR_PORT" env-default:"8000"`
	CabURL           string        `yaml:"cab_url" env:"CAB_AGENT_URL" env-default:"http://localhost:5001/"`
	FlightURL        string        `yaml:"flight_url" env:"FLIGHT_AGENT_URL" env-default:"http://localhost:5002/"`
	HotelURL         string        `yaml:"hotel_url" env:"HOTEL_AGENT_URL" env-default:"http://localhost:5003/"`
	CallTimeout      time.Duration `yaml:"call_timeout" env:"ORCHESTRATOR_CALL_TIMEOUT" env-default:"30s"`
	RequestTimeout   time.Duration `yaml:"request_timeout" env:"ORCHESTRATOR_REQUEST_TIMEOUT" env-default:"45s"`
	DiscoveryTimeout time.Duration `yaml:"discovery_timeout" env:"ORCHESTRATOR_DISCOVERY_TIMEOUT" env-default:"5s"`
	DiscoveryTTL     time.Duration `yaml:"discovery_ttl" env:"ORCHESTRATOR_DISCOVERY_TTL" env-default:"30s"`
	RateLimit        int           `yaml:"rate_limit" env:"ORCHESTRATOR_RATE_LIMIT" env-default:"10"`
	RateWindow       time.Duration `yaml:"rate_window" env:"ORCHESTRATOR_RATE_WINDOW" env-default:"1m"`
	HTTPTimeout      time.Duration `yaml:"http_timeout" env:"ORCHESTRATOR_HTTP_TIMEOUT" env-default:"60s"`
}

// Agents configures the three mock booking agents.
type Agents struct {
	CabPort      string  `yaml:"cab_port" env:"CAB_AGENT_PORT" env-default:"5001"`
	FlightPort   string  `yaml:"flight_port" env:"FLIGHT_AGENT_PORT" env-default:"5002"`
	HotelPort    string  `yaml:"hotel_port" env:"HOTEL_AGENT_PORT" env-default:"5003"`
	Seed         int64   `yaml:"seed" env:"AGENT_SEED" env-default:"0"`
	Availability float64 `yaml:"availability" env:"AGENT_AVAILABILITY" env-default:"0.75"`
	FailRate     float64 `yaml:"fail_rate" env:"AGENT_FAIL_RATE" env-default:"0"`
	AvgLatency   float64 `yaml:"avg_latency" env:"AGENT_AVG_LATENCY" env-default:"0"`
}

// Redis is optional; an empty Addr turns idempotency off.
type Redis struct {
	Addr           string        `yaml:"addr" env:"REDIS_ADDR"`
	Password       string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB             int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl" env:"REDIS_IDEMPOTENCY_TTL" env-default:"24h"`
}

func New() (*Config, error) {
	return Load(DefaultPath)
}

// Load reads path when it exists and falls back to the environment alone
// otherwise.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if a := c.Agents.Availability; a < 0 || a > 1 {
		return fmt.Errorf("config error: agents.availability %v outside [0, 1]", a)
	}
	if f := c.Agents.FailRate; f < 0 || f > 1 {
		return fmt.Errorf("config error: agents.fail_rate %v outside [0, 1]", f)
	}
	if c.Orchestrator.RateLimit < 1 {
		return fmt.Errorf("config error: orchestrator.rate_limit must be positive")
	}
	return nil
}
