package config

import (
	"testing"
	"time"
)

func TestParseOrigins(t *testing.T) {
	if got := parseOrigins(""); got != nil {
		t.Errorf("empty input should return nil, got %v", got)
	}

	got := parseOrigins("https://a.example.com, https://b.example.com ,,")
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(got) != len(want) {
		t.Fatalf("parseOrigins = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("origin[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort == "" {
		t.Error("ServerPort default missing")
	}
	if cfg.SessionTTL != 7*24*time.Hour {
		t.Errorf("SessionTTL = %v, want 7 days", cfg.SessionTTL)
	}
	if cfg.PublicCacheTTL != 5*time.Minute {
		t.Errorf("PublicCacheTTL = %v, want 5 minutes", cfg.PublicCacheTTL)
	}
	if cfg.BcryptCost < 4 {
		t.Errorf("BcryptCost = %d too low", cfg.BcryptCost)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_KEY", "42")
	if got := getEnvInt("TEST_INT_KEY", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}

	t.Setenv("TEST_INT_KEY", "not-a-number")
	if got := getEnvInt("TEST_INT_KEY", 7); got != 7 {
		t.Errorf("getEnvInt fallback = %d, want 7", got)
	}

	if got := getEnvInt("TEST_INT_UNSET", 9); got != 9 {
		t.Errorf("getEnvInt unset = %d, want 9", got)
	}
}

func TestCacheKeys(t *testing.T) {
	if CacheKey.PublicSectionsKey(3) == CacheKey.PublicSectionsKey(4) {
		t.Error("section keys must differ per batch")
	}
	if CacheKey.PublicNoticesKey(0) == CacheKey.PublicNoticesKey(1) {
		t.Error("notice keys must differ per category")
	}
}
