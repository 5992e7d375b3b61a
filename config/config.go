package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/viper"

	"memory-game/matcherrors"
)

// MaxSupportedDimension is the largest board the symbol alphabet can fill
// (52 symbols, 50 pairs at 10x10).
const MaxSupportedDimension = 10

// EnvPrefix is prepended to every environment override, e.g. MEMORY_DIMENSION.
const EnvPrefix = "MEMORY"

// Config holds all configurable game parameters.
type Config struct {
	// Dimension is the board size; 0 means ask the player.
	Dimension    int `mapstructure:"dimension"`
	MinDimension int `mapstructure:"min_dimension"`
	MaxDimension int `mapstructure:"max_dimension"`

	HiddenCard string `mapstructure:"hidden_card"`
	QuitToken  string `mapstructure:"quit_token"`
	HintToken  string `mapstructure:"hint_token"`

	// Seed drives the board shuffle and hint picks; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`

	ShowRules bool   `mapstructure:"show_rules"`
	Color     bool   `mapstructure:"color"`
	LogLevel  string `mapstructure:"log_level"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Dimension:    0,
		MinDimension: 2,
		MaxDimension: MaxSupportedDimension,
		HiddenCard:   "#",
		QuitToken:    "q",
		HintToken:    "h",
		Seed:         0,
		ShowRules:    true,
		Color:        true,
		LogLevel:     "warn",
	}
}

// SetDefaults registers every default on v so that environment variables
// are picked up by Unmarshal even when no config file sets the key.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("dimension", d.Dimension)
	v.SetDefault("min_dimension", d.MinDimension)
	v.SetDefault("max_dimension", d.MaxDimension)
	v.SetDefault("hidden_card", d.HiddenCard)
	v.SetDefault("quit_token", d.QuitToken)
	v.SetDefault("hint_token", d.HintToken)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("show_rules", d.ShowRules)
	v.SetDefault("color", d.Color)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads configuration from an optional config.json (or the file named
// by the "config" key), then applies MEMORY_* environment overrides and any
// flags already bound on v. Fields not set in any source keep their defaults.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := v.GetString("config")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing ./config.json is fine; a missing explicit file is not.
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: reading config file: %v", matcherrors.ErrInvalidConfig, err)
		}
	} else {
		slog.Debug("loaded config file", "tag", "config", "file", v.ConfigFileUsed())
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", matcherrors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first inconsistency in c, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.MinDimension < 2 {
		return invalid("min_dimension must be at least 2, got %d", c.MinDimension)
	}
	if c.MaxDimension < c.MinDimension {
		return invalid("max_dimension %d is below min_dimension %d", c.MaxDimension, c.MinDimension)
	}
	if c.MaxDimension > MaxSupportedDimension {
		return invalid("max_dimension must be at most %d, got %d", MaxSupportedDimension, c.MaxDimension)
	}
	if lowestEven := c.MinDimension + c.MinDimension%2; lowestEven > c.MaxDimension {
		return invalid("no even dimension between %d and %d", c.MinDimension, c.MaxDimension)
	}
	if c.Dimension != 0 {
		if err := c.CheckDimension(c.Dimension); err != nil {
			return invalid("dimension: %v", err)
		}
	}

	if utf8.RuneCountInString(c.HiddenCard) != 1 {
		return invalid("hidden_card must be a single character, got %q", c.HiddenCard)
	}
	if r, _ := utf8.DecodeRuneInString(c.HiddenCard); unicode.IsLetter(r) || unicode.IsSpace(r) {
		return invalid("hidden_card %q collides with card symbols", c.HiddenCard)
	}

	for _, tok := range []struct{ key, val string }{
		{"quit_token", c.QuitToken},
		{"hint_token", c.HintToken},
	} {
		if strings.TrimSpace(tok.val) == "" || strings.ContainsAny(tok.val, " \t") {
			return invalid("%s must be a single non-empty word, got %q", tok.key, tok.val)
		}
		if _, err := strconv.Atoi(tok.val); err == nil {
			return invalid("%s must not be numeric, got %q", tok.key, tok.val)
		}
	}
	// Tokens are matched case-insensitively at the prompt.
	if strings.EqualFold(c.QuitToken, c.HintToken) {
		return invalid("quit_token and hint_token must differ, got %q and %q", c.QuitToken, c.HintToken)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return invalid("%v", err)
	}
	return nil
}

// CheckDimension reports whether dim is an even board size within the
// configured range.
func (c *Config) CheckDimension(dim int) error {
	if dim < c.MinDimension || dim > c.MaxDimension {
		return fmt.Errorf("%w: %d is not between %d and %d", matcherrors.ErrDimensionOutOfRange, dim, c.MinDimension, c.MaxDimension)
	}
	if dim%2 != 0 {
		return fmt.Errorf("%w: got %d", matcherrors.ErrOddDimension, dim)
	}
	return nil
}

// HiddenRune returns the hidden-card marker as a rune.
func (c *Config) HiddenRune() rune {
	r, _ := utf8.DecodeRuneInString(c.HiddenCard)
	return r
}

// ParseLevel maps a log level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", name)
	}
	return lvl, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", matcherrors.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
