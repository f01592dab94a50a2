package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Operator OperatorConfig
	Redis    RedisConfig
	Inflight InflightConfig
	Probe    ProbeConfig
	LogLevel string
}

type ServerConfig struct {
	Address string
}

type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// OperatorConfig is the identity stamped on stage-advance calls.
type OperatorConfig struct {
	AgentID      string
	TechnicianID string
	RepairNotes  string
}

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
}

type InflightConfig struct {
	TTL time.Duration
}

type ProbeConfig struct {
	Interval time.Duration
}

func LoadAll() (*Config, error) {
	var errs []error

	intVar := func(key string, def int) int {
		v, err := getEnvInt(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := &Config{
		Server: ServerConfig{
			Address: getEnv("SERVER_ADDRESS", ":8080"),
		},
		Backend: BackendConfig{
			URL:     getEnv("BACKEND_URL", "http://localhost:8000/api"),
			Timeout: time.Duration(intVar("BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Operator: OperatorConfig{
			AgentID:      getEnv("OPERATOR_AGENT_ID", "AGENT-007"),
			TechnicianID: getEnv("OPERATOR_TECHNICIAN_ID", "TECH-99"),
			RepairNotes:  getEnv("OPERATOR_REPAIR_NOTES", "Fixed via Dashboard"),
		},
		Inflight: InflightConfig{
			TTL: time.Duration(intVar("INFLIGHT_TTL_SECONDS", 30)) * time.Second,
		},
		Probe: ProbeConfig{
			Interval: time.Duration(intVar("PROBE_INTERVAL_SECONDS", 30)) * time.Second,
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis = RedisConfig{
			Enabled:  true,
			Address:  addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       intVar("REDIS_DB", 0),
		}
	}

	if err := joinErrors(errs); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	var errs []error

	u, err := url.Parse(cfg.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_URL must be an absolute http(s) URL, got %q", cfg.Backend.URL))
	}
	if cfg.Backend.Timeout <= 0 {
		errs = append(errs, errors.New("BACKEND_TIMEOUT_SECONDS must be > 0"))
	}
	if cfg.Inflight.TTL <= 0 {
		errs = append(errs, errors.New("INFLIGHT_TTL_SECONDS must be > 0"))
	}
	if cfg.Inflight.TTL > 0 && cfg.Backend.Timeout > 0 && cfg.Inflight.TTL < cfg.Backend.Timeout {
		errs = append(errs, fmt.Errorf("INFLIGHT_TTL_SECONDS (%v) must be >= BACKEND_TIMEOUT_SECONDS (%v)", cfg.Inflight.TTL, cfg.Backend.Timeout))
	}
	if cfg.Probe.Interval <= 0 {
		errs = append(errs, errors.New("PROBE_INTERVAL_SECONDS must be > 0"))
	}
	if cfg.Redis.DB < 0 {
		errs = append(errs, errors.New("REDIS_DB must be >= 0"))
	}

	return joinErrors(errs)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for env %s: %q", key, v)
	}
	return i, nil
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
