package config

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var envMu sync.Mutex

func TestLoadAll_Defaults(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	cfg, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Fatalf("unexpected Server.Address default: %q", cfg.Server.Address)
	}
	if cfg.Backend.URL != "http://localhost:8000/api" {
		t.Fatalf("unexpected Backend.URL default: %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Fatalf("unexpected Backend.Timeout default: %v", cfg.Backend.Timeout)
	}
	if cfg.Operator.AgentID != "AGENT-007" {
		t.Fatalf("unexpected Operator.AgentID default: %q", cfg.Operator.AgentID)
	}
	if cfg.Operator.TechnicianID != "TECH-99" {
		t.Fatalf("unexpected Operator.TechnicianID default: %q", cfg.Operator.TechnicianID)
	}
	if cfg.Operator.RepairNotes != "Fixed via Dashboard" {
		t.Fatalf("unexpected Operator.RepairNotes default: %q", cfg.Operator.RepairNotes)
	}
	if cfg.Inflight.TTL != 30*time.Second {
		t.Fatalf("unexpected Inflight.TTL default: %v", cfg.Inflight.TTL)
	}
	if cfg.Probe.Interval != 30*time.Second {
		t.Fatalf("unexpected Probe.Interval default: %v", cfg.Probe.Interval)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected LogLevel default: %q", cfg.LogLevel)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("expected Redis disabled when REDIS_ADDR not set")
	}
}

func TestLoadAll_Overrides(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	t.Setenv("BACKEND_URL", "https://claims.internal/api")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "3")
	t.Setenv("OPERATOR_AGENT_ID", "AGENT-1")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	if cfg.Backend.URL != "https://claims.internal/api" {
		t.Fatalf("unexpected Backend.URL: %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Fatalf("unexpected Backend.Timeout: %v", cfg.Backend.Timeout)
	}
	if cfg.Operator.AgentID != "AGENT-1" {
		t.Fatalf("unexpected Operator.AgentID: %q", cfg.Operator.AgentID)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected LogLevel: %q", cfg.LogLevel)
	}
}

func TestLoadAll_WithRedis(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	if !cfg.Redis.Enabled {
		t.Fatalf("expected Redis enabled")
	}
	if cfg.Redis.Address != "localhost:6379" {
		t.Fatalf("unexpected Redis.Address: %q", cfg.Redis.Address)
	}
	if cfg.Redis.Password != "secret" {
		t.Fatalf("unexpected Redis.Password: %q", cfg.Redis.Password)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("unexpected Redis.DB: %d", cfg.Redis.DB)
	}
}

func TestLoadAll_InvalidInts(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"invalid BACKEND_TIMEOUT_SECONDS", "BACKEND_TIMEOUT_SECONDS", "abc"},
		{"invalid INFLIGHT_TTL_SECONDS", "INFLIGHT_TTL_SECONDS", "nope"},
		{"invalid PROBE_INTERVAL_SECONDS", "PROBE_INTERVAL_SECONDS", "x"},
		{"invalid REDIS_DB", "REDIS_DB", "bad"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearTestEnv(t)

			if strings.HasPrefix(tc.key, "REDIS_") {
				t.Setenv("REDIS_ADDR", "localhost:6379")
			}
			t.Setenv(tc.key, tc.val)

			_, err := LoadAll()
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Fatalf("expected error mentioning %s, got: %v", tc.key, err)
			}
		})
	}
}

func TestLoadAll_ValidationFailures(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"relative backend url", "BACKEND_URL", "/api"},
		{"timeout <= 0", "BACKEND_TIMEOUT_SECONDS", "0"},
		{"ttl <= 0", "INFLIGHT_TTL_SECONDS", "0"},
		{"ttl shorter than backend timeout", "INFLIGHT_TTL_SECONDS", "5"},
		{"probe interval <= 0", "PROBE_INTERVAL_SECONDS", "-5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearTestEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := LoadAll()
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Fatalf("expected error mentioning %s, got: %v", tc.key, err)
			}
		})
	}
}

func TestLoadAll_TTLMatchingBackendTimeout(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	t.Setenv("BACKEND_TIMEOUT_SECONDS", "20")
	t.Setenv("INFLIGHT_TTL_SECONDS", "20")

	cfg, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if cfg.Inflight.TTL != 20*time.Second {
		t.Fatalf("unexpected Inflight.TTL: %v", cfg.Inflight.TTL)
	}
}

func TestLoadAll_CollectsAllErrors(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	t.Setenv("BACKEND_TIMEOUT_SECONDS", "abc")
	t.Setenv("PROBE_INTERVAL_SECONDS", "def")

	_, err := LoadAll()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	for _, key := range []string{"BACKEND_TIMEOUT_SECONDS", "PROBE_INTERVAL_SECONDS"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected error mentioning %s, got: %v", key, err)
		}
	}
}

func TestGetEnv(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	if got := getEnv("NOPE", "default"); got != "default" {
		t.Fatalf("expected default, got %q", got)
	}

	t.Setenv("A", "x")
	if got := getEnv("A", "default"); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	got, err := getEnvInt("MISSING", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}

	t.Setenv("N", "123")
	got, err = getEnvInt("N", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 123 {
		t.Fatalf("expected 123, got %d", got)
	}

	t.Setenv("BAD", "abc")
	_, err = getEnvInt("BAD", 7)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "BAD") {
		t.Fatalf("expected error mentioning BAD, got: %v", err)
	}
}

func TestJoinErrors(t *testing.T) {
	if err := joinErrors(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	e1 := errors.New("one")
	e2 := errors.New("two")
	err := joinErrors([]error{e1, e2})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	if !errors.Is(err, e1) {
		t.Fatalf("expected errors.Is(err, e1) to be true")
	}
	if !errors.Is(err, e2) {
		t.Fatalf("expected errors.Is(err, e2) to be true")
	}
}

func clearTestEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVER_ADDRESS",
		"BACKEND_URL",
		"BACKEND_TIMEOUT_SECONDS",
		"OPERATOR_AGENT_ID",
		"OPERATOR_TECHNICIAN_ID",
		"OPERATOR_REPAIR_NOTES",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"INFLIGHT_TTL_SECONDS",
		"PROBE_INTERVAL_SECONDS",
		"LOG_LEVEL",
		"A",
		"N",
		"BAD",
	}
	for _, k := range keys {
		// Setenv registers the restore; Unsetenv then clears it for this test.
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}
