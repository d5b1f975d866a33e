package app

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseEnvDefaults(t *testing.T) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	want := []time.Duration{20 * time.Second, 15 * time.Second, 10 * time.Second}
	if len(cfg.LevelTimes) != len(want) {
		t.Fatalf("level times %v, want %v", cfg.LevelTimes, want)
	}
	for i := range want {
		if cfg.LevelTimes[i] != want[i] {
			t.Fatalf("level times %v, want %v", cfg.LevelTimes, want)
		}
	}
	if cfg.LaxDivision || cfg.Verbose || cfg.Seed != nil {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseEnvValues(t *testing.T) {
	t.Setenv("MATHCLASH_HOME", "/tmp/mc")
	t.Setenv("MATHCLASH_SEED", "99")
	t.Setenv("MATHCLASH_LAX_DIVISION", "true")
	t.Setenv("MATHCLASH_LEVEL_TIMES", "5s,4s,3s")

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Home != "/tmp/mc" || cfg.Seed == nil || *cfg.Seed != 99 || !cfg.LaxDivision {
		t.Fatalf("config %+v", cfg)
	}
	if len(cfg.LevelTimes) != 3 || cfg.LevelTimes[2] != 3*time.Second {
		t.Fatalf("level times %v", cfg.LevelTimes)
	}
}

func TestParseEnvZeroSeed(t *testing.T) {
	t.Setenv("MATHCLASH_SEED", "0")

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Seed == nil || *cfg.Seed != 0 {
		t.Fatalf("seed %v, want explicit 0", cfg.Seed)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("MATHCLASH_SEED", "not-an-int")

	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadConfigDefaultHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !strings.HasSuffix(cfg.Home, defaultHomeDir) {
		t.Fatalf("home %q", cfg.Home)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Home: "x", LevelTimes: []time.Duration{time.Second, 0}}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidLevelTimes) {
		t.Fatalf("expected ErrInvalidLevelTimes, got %v", err)
	}
	if err := (Config{}).Validate(); err == nil {
		t.Fatal("expected error for empty home")
	}
}
