package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "OUTPUT_PATH", "LLM_PROVIDER", "HTTP_TIMEOUT_SECONDS", "SKYSCANNER_ORIGIN_ID"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppEnv != "prod" || c.OutputPath != "travel_recommendations.pdf" || c.LLMProvider != "ollama" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.HTTPTimeout != 20*time.Second || c.OriginID != "27537542" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_TIMEOUT_SECONDS", "7")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")
	c := Load()
	if c.LLMProvider != "gemini" || c.LLMTimeout != 7*time.Second {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.HTTPTimeout != 20*time.Second {
		t.Fatalf("bad integer should fall back to default, got %v", c.HTTPTimeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PLANNER_TEST_DOTENV=loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANNER_TEST_DOTENV", "")
	os.Unsetenv("PLANNER_TEST_DOTENV")

	LoadDotEnv(path)
	if got := os.Getenv("PLANNER_TEST_DOTENV"); got != "loaded" {
		t.Fatalf("expected value from .env, got %q", got)
	}

	LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")) // must not panic
}
