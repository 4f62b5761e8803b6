package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := Default()
	if cfg.HandSize != d.HandSize || cfg.JokerPoints != d.JokerPoints || cfg.Rounds != d.Rounds {
		t.Fatalf("expected defaults %+v, got %+v", d, cfg)
	}
	if len(cfg.Players) != 0 {
		t.Fatalf("expected no configured players, got %v", cfg.Players)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("players:\n  - Ann\n  - Bob\nhand_size: 9\nlog_level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Setenv("ACESTOKINGS_JOKER_POINTS", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Players) != 2 || cfg.Players[0] != "Ann" || cfg.Players[1] != "Bob" {
		t.Fatalf("unexpected players %v", cfg.Players)
	}
	if cfg.HandSize != 9 {
		t.Fatalf("expected hand size 9, got %d", cfg.HandSize)
	}
	if cfg.JokerPoints != 20 {
		t.Fatalf("expected env override 20, got %d", cfg.JokerPoints)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", l)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"tiny hand", func(c *Config) { c.HandSize = 1 }, true},
		{"too many rounds", func(c *Config) { c.Rounds = 14 }, true},
		{"negative jokers", func(c *Config) { c.JokerPoints = -1 }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"duplicate players", func(c *Config) { c.Players = []string{"Ann", "Ann"} }, true},
		{"blank player", func(c *Config) { c.Players = []string{" "} }, true},
		{"full table", func(c *Config) { c.Players = names(7) }, false},
		{"more players than cards", func(c *Config) { c.Players = names(8) }, true},
		{"hand larger than the deck", func(c *Config) { c.HandSize = 52 }, true},
		{"big hands, few players", func(c *Config) { c.HandSize = 25; c.Players = names(2) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Player %d", i+1)
	}
	return out
}

func TestMaxPlayers(t *testing.T) {
	tests := []struct {
		handSize int
		want     int
	}{
		{7, 7},
		{10, 5},
		{51, 1},
		{52, 0},
		{0, 0},
	}
	for _, tt := range tests {
		c := Default()
		c.HandSize = tt.handSize
		if got := c.MaxPlayers(); got != tt.want {
			t.Fatalf("hand size %d: expected %d players, got %d", tt.handSize, tt.want, got)
		}
	}
}

func TestValidateReportsDeckShortfall(t *testing.T) {
	c := Default()
	c.Players = names(8)
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "at most 7 players") {
		t.Fatalf("expected the player limit in %v", err)
	}
}
