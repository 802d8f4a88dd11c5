package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_DefaultPort(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 5000)
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("STRATA_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strata.toml")
	content := `
environment = "production"

[server]
port = 8123

[cache]
ttl = "60s"

[clients.llm]
provider = "gemini"
model = "gemini-2.0-flash"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("Server.Port = %d, want 8123", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction() to be true")
	}
	if cfg.Cache.GetTTL() != 60*time.Second {
		t.Errorf("Cache TTL = %v, want 60s", cfg.Cache.GetTTL())
	}
	if cfg.Clients.LLM.Provider != "gemini" {
		t.Errorf("LLM.Provider = %q, want gemini", cfg.Clients.LLM.Provider)
	}
	// Defaults survive a partial file
	if cfg.Clients.Yahoo.RateLimit != 5 {
		t.Errorf("Yahoo.RateLimit = %d, want default 5", cfg.Clients.Yahoo.RateLimit)
	}
}

func TestConfig_LoadMissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/strata.toml")
	if err != nil {
		t.Fatalf("LoadConfig with missing file: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want default 5000", cfg.Server.Port)
	}
}

func TestConfig_CacheTTLBadValueDefaults(t *testing.T) {
	c := CacheConfig{TTL: "not-a-duration"}
	if c.GetTTL() != 5*time.Minute {
		t.Errorf("GetTTL() = %v, want 5m fallback", c.GetTTL())
	}
}

func TestResolveAPIKey_EnvPriority(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "env-key")

	key, err := ResolveAPIKey("groq", "file-key")
	if err != nil {
		t.Fatalf("ResolveAPIKey: %v", err)
	}
	if key != "env-key" {
		t.Errorf("key = %q, want env-key", key)
	}
}

func TestResolveAPIKey_Fallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	key, err := ResolveAPIKey("gemini", "file-key")
	if err != nil {
		t.Fatalf("ResolveAPIKey: %v", err)
	}
	if key != "file-key" {
		t.Errorf("key = %q, want file-key", key)
	}
}

func TestResolveAPIKey_Missing(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("STRATA_GROQ_API_KEY", "")

	if _, err := ResolveAPIKey("groq", ""); err == nil {
		t.Error("expected error when no key available")
	}
}
