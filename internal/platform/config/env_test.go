package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Lang string `env:"TEST_LANG" envDefault:"en"`
	Max  int    `env:"TEST_MAX" envDefault:"20"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Lang != "en" {
		t.Fatalf("expected default lang en, got %q", cfg.Lang)
	}
	if cfg.Max != 20 {
		t.Fatalf("expected default max 20, got %d", cfg.Max)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TEST_LANG", "ignored")
	t.Setenv("HITPOINTS_TEST_LANG", "pt-BR")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Lang != "pt-BR" {
		t.Fatalf("expected prefixed lang pt-BR, got %q", cfg.Lang)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("HITPOINTS_TEST_MAX", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLookupEnv(t *testing.T) {
	t.Setenv("HITPOINTS_TEST_LOOKUP", "value")

	got, ok := LookupEnv("TEST_LOOKUP")
	if !ok || got != "value" {
		t.Fatalf("LookupEnv = %q, %v; want value, true", got, ok)
	}
	if _, ok := LookupEnv("TEST_MISSING_KEY"); ok {
		t.Fatal("expected missing key to be absent")
	}
}
