package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DanMoss/Card-Game/domain/deck"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// ACESTOKINGS_HAND_SIZE=9.
const EnvPrefix = "ACESTOKINGS"

type Config struct {
	Players     []string `mapstructure:"players"`
	HandSize    int      `mapstructure:"hand_size"`
	JokerPoints int      `mapstructure:"joker_points"`
	Rounds      int      `mapstructure:"rounds"`
	LogLevel    string   `mapstructure:"log_level"` // debug, info, warn, error
	ShowLedger  bool     `mapstructure:"show_ledger"` // print the game journal at the end
}

// Default returns the standard Aces to Kings settings.
func Default() Config {
	return Config{
		HandSize:    7,
		JokerPoints: 15,
		Rounds:      13,
		LogLevel:    "info",
	}
}

// Load reads the configuration from defaults, the optional YAML file at path
// and ACESTOKINGS_* environment variables, in increasing priority.
func Load(path string) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("players", []string{})
	v.SetDefault("hand_size", d.HandSize)
	v.SetDefault("joker_points", d.JokerPoints)
	v.SetDefault("rounds", d.Rounds)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("show_ledger", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings describe a playable game.
func (c Config) Validate() error {
	var errs []error
	if c.HandSize < 2 {
		errs = append(errs, fmt.Errorf("hand_size must be at least 2, got %d", c.HandSize))
	}
	if c.HandSize >= 2 {
		seats := max(len(c.Players), 1)
		if limit := c.MaxPlayers(); seats > limit {
			errs = append(errs, fmt.Errorf("%d players with hand_size %d need %d cards, a round deals from %d (at most %d players)",
				seats, c.HandSize, seats*c.HandSize+1, deck.RoundSize(), limit))
		}
	}
	if c.JokerPoints < 0 {
		errs = append(errs, fmt.Errorf("joker_points must not be negative, got %d", c.JokerPoints))
	}
	if c.Rounds < 1 || c.Rounds > 13 {
		errs = append(errs, fmt.Errorf("rounds must be between 1 and 13, got %d", c.Rounds))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[string]bool)
	for _, p := range c.Players {
		name := strings.TrimSpace(p)
		if name == "" {
			errs = append(errs, errors.New("player names must not be empty"))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("duplicate player name %q", name))
		}
		seen[name] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// MaxPlayers is the largest table a round's deck can deal HandSize cards
// to, keeping one card back to start the discard pile.
func (c Config) MaxPlayers() int {
	if c.HandSize < 1 {
		return 0
	}
	return (deck.RoundSize() - 1) / c.HandSize
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
