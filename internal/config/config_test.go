package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

func TestParse_EmbeddedDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "MEILISEARCH_URL", "MEILISEARCH_API_KEY", "MEILI_INDEX_NAME",
		"MEILI_CHUNKS_INDEX_NAME", "LOG_LEVEL", "DOCSGATE_API_KEYS", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Parse(defaultConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.HTTP.Port)
	}
	if cfg.Search.URL != "http://localhost:7700" {
		t.Errorf("URL = %q", cfg.Search.URL)
	}
	if cfg.Search.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.Search.APIKey)
	}
	if cfg.Search.DocumentsIndex != "documents" {
		t.Errorf("DocumentsIndex = %q", cfg.Search.DocumentsIndex)
	}
	if cfg.Search.ChunksIndex != "documents_chunks" {
		t.Errorf("ChunksIndex = %q", cfg.Search.ChunksIndex)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if len(cfg.Auth.APIKeys) != 0 {
		t.Errorf("APIKeys = %v, want none", cfg.Auth.APIKeys)
	}
	if len(cfg.HTTP.AllowedOrigins) != 1 || cfg.HTTP.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.HTTP.AllowedOrigins)
	}
}

func TestParse_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MEILISEARCH_URL", "https://search.internal:7700")
	t.Setenv("MEILISEARCH_API_KEY", "master-key")
	t.Setenv("MEILI_INDEX_NAME", "kb")
	t.Setenv("MEILI_CHUNKS_INDEX_NAME", "")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DOCSGATE_API_KEYS", "k1, k2,,")

	cfg, err := Parse(defaultConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Errorf("Port = %d", cfg.HTTP.Port)
	}
	if cfg.Search.URL != "https://search.internal:7700" {
		t.Errorf("URL = %q", cfg.Search.URL)
	}
	if cfg.Search.APIKey != "master-key" {
		t.Errorf("APIKey = %q", cfg.Search.APIKey)
	}
	if cfg.Search.ChunksIndex != "kb_chunks" {
		t.Errorf("ChunksIndex = %q, want derived kb_chunks", cfg.Search.ChunksIndex)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if len(cfg.Auth.APIKeys) != 2 || cfg.Auth.APIKeys[0] != "k1" || cfg.Auth.APIKeys[1] != "k2" {
		t.Errorf("APIKeys = %v", cfg.Auth.APIKeys)
	}
}

func TestParse_ExplicitChunksIndex(t *testing.T) {
	t.Setenv("MEILI_INDEX_NAME", "kb")
	t.Setenv("MEILI_CHUNKS_INDEX_NAME", "kb_passages")

	cfg, err := Parse(defaultConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.ChunksIndex != "kb_passages" {
		t.Errorf("ChunksIndex = %q", cfg.Search.ChunksIndex)
	}
}

func TestParse_SequenceList(t *testing.T) {
	data := []byte("auth:\n  api_keys:\n    - a\n    - \" b \"\n")

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Auth.APIKeys) != 2 || cfg.Auth.APIKeys[1] != "b" {
		t.Errorf("APIKeys = %v", cfg.Auth.APIKeys)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParse_ListRejectsMapping(t *testing.T) {
	if _, err := Parse([]byte("auth:\n  api_keys:\n    a: b\n")); err == nil {
		t.Fatal("expected error for mapping list value")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "http:\n  port: 9000\nsearch:\n  documents_index: \"${MEILI_INDEX_NAME:-docs}\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config", "staging.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("MEILI_INDEX_NAME", "")

	cfg, err := Load("staging")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.HTTP.Port)
	}
	if cfg.Search.DocumentsIndex != "docs" || cfg.Search.ChunksIndex != "docs_chunks" {
		t.Errorf("indexes = %q/%q", cfg.Search.DocumentsIndex, cfg.Search.ChunksIndex)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MEILI_INDEX_NAME=from_dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("MEILI_INDEX_NAME", "")
	os.Unsetenv("MEILI_INDEX_NAME")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.DocumentsIndex != "from_dotenv" {
		t.Errorf("DocumentsIndex = %q, want from_dotenv", cfg.Search.DocumentsIndex)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 70000

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_InvalidURL(t *testing.T) {
	cfg := validConfig()
	cfg.Search.URL = "localhost:7700"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for URL without scheme")
	}
	expected := `search.url must be an http(s) URL, got "localhost:7700"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_SameIndexes(t *testing.T) {
	cfg := validConfig()
	cfg.Search.ChunksIndex = cfg.Search.DocumentsIndex

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when both indexes share a name")
	}
}

func TestValidate_LogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run("level="+level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = level
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for %q: %v", level, err)
			}
		})
	}

	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 3000 {
		t.Errorf("expected Port=3000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Search.ReadinessTimeoutSec != 10 {
		t.Errorf("expected ReadinessTimeoutSec=10, got %d", cfg.Search.ReadinessTimeoutSec)
	}
	if cfg.Search.RequestTimeoutSec != 10 {
		t.Errorf("expected RequestTimeoutSec=10, got %d", cfg.Search.RequestTimeoutSec)
	}
	if cfg.Search.ChunksIndex != "documents_chunks" {
		t.Errorf("expected ChunksIndex=documents_chunks, got %q", cfg.Search.ChunksIndex)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080, ReadTimeoutSec: 30, ShutdownSec: 5},
		Search: SearchConfig{DocumentsIndex: "kb", ChunksIndex: "passages", ReadinessTimeoutSec: 15},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Search.ChunksIndex != "passages" {
		t.Errorf("expected ChunksIndex=passages, got %q", cfg.Search.ChunksIndex)
	}
	if cfg.Search.ReadinessTimeoutSec != 15 {
		t.Errorf("expected ReadinessTimeoutSec=15, got %d", cfg.Search.ReadinessTimeoutSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DOCSGATE_TEST_SET", "value")
	t.Setenv("DOCSGATE_TEST_EMPTY", "")

	got := string(expandEnvVars([]byte("a: ${DOCSGATE_TEST_SET}\nb: ${DOCSGATE_TEST_EMPTY:-fallback}\nc: ${DOCSGATE_TEST_EMPTY}")))
	want := "a: value\nb: fallback\nc: "
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
