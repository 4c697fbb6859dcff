package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configEnvKeys = []string{
	"APP_ENV",
	"HTTP_ADDR", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT",
	"LOG_LEVEL",
	"POSTGRES_DSN",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_USE_SSL",
	"JWT_SECRET", "JWT_ACCESS_TTL", "SESSION_TTL",
	"DISCOVERY_MAX_RESULTS", "DISCOVERY_MAX_SCAN",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
env: staging
http:
  addr: ":9090"
auth:
  jwt_access_ttl: 2h
discovery:
  max_results: 25
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Env != "staging" {
		t.Fatalf("unexpected env: %s", cfg.Env)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Auth.JWTAccessTTL != 2*time.Hour {
		t.Fatalf("unexpected access ttl: %s", cfg.Auth.JWTAccessTTL)
	}
	if cfg.Discovery.MaxResults != 25 {
		t.Fatalf("unexpected max results: %d", cfg.Discovery.MaxResults)
	}

	// Untouched keys keep their defaults.
	if cfg.HTTP.ReadTimeout != 5*time.Second {
		t.Fatalf("read timeout default lost: %s", cfg.HTTP.ReadTimeout)
	}
	if cfg.Discovery.MaxScan != 500 {
		t.Fatalf("max scan default lost: %d", cfg.Discovery.MaxScan)
	}
	if cfg.S3.Bucket != "unhinged-photos" {
		t.Fatalf("s3 bucket default lost: %s", cfg.S3.Bucket)
	}
}

func TestLoadEnvOverridesWinOverYAML(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("postgres:\n  dsn: from-yaml\n"), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	t.Setenv("POSTGRES_DSN", "from-env")
	t.Setenv("SESSION_TTL", "48h")
	t.Setenv("DISCOVERY_MAX_SCAN", "100")
	t.Setenv("S3_USE_SSL", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Postgres.DSN != "from-env" {
		t.Fatalf("env must beat yaml: %s", cfg.Postgres.DSN)
	}
	if cfg.Auth.SessionTTL != 48*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.Auth.SessionTTL)
	}
	if cfg.Discovery.MaxScan != 100 {
		t.Fatalf("unexpected max scan: %d", cfg.Discovery.MaxScan)
	}
	if !cfg.S3.UseSSL {
		t.Fatalf("s3 use_ssl override lost")
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("defaults not applied: %s", cfg.HTTP.Addr)
	}
}

func TestLoadBadDuration(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("JWT_ACCESS_TTL", "not-a-duration")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected parse error")
	}
}
