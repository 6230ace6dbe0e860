// Package config provides Viper-based configuration loading for the arena.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CombatConfig holds the injectable combat tuning values.
type CombatConfig struct {
	// AttackCost is the stamina cost of an attack.
	AttackCost int `mapstructure:"attack_cost"`
	// DefendCost is the stamina cost of the defend response.
	DefendCost int `mapstructure:"defend_cost"`
	// MoveCost is the stamina cost of the evasion response.
	MoveCost int `mapstructure:"move_cost"`
	// GaugeMax is the counter gauge threshold for new combatants.
	GaugeMax int `mapstructure:"gauge_max"`
	// Seed is the dice seed; 0 means use non-deterministic entropy.
	Seed int64 `mapstructure:"seed"`
}

// ArenaConfig holds settings for the demo arena driver.
type ArenaConfig struct {
	// RosterDir is the directory of combatant definition YAML files.
	RosterDir string `mapstructure:"roster_dir"`
	// MaxRounds caps the demo duel length.
	MaxRounds int `mapstructure:"max_rounds"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Arena   ArenaConfig   `mapstructure:"arena"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCombat(c.Combat); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateArena(c.Arena); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateCombat(c CombatConfig) error {
	var errs []string
	if c.AttackCost < 0 {
		errs = append(errs, fmt.Sprintf("combat.attack_cost must be >= 0, got %d", c.AttackCost))
	}
	if c.DefendCost < 0 {
		errs = append(errs, fmt.Sprintf("combat.defend_cost must be >= 0, got %d", c.DefendCost))
	}
	if c.MoveCost < 0 {
		errs = append(errs, fmt.Sprintf("combat.move_cost must be >= 0, got %d", c.MoveCost))
	}
	if c.GaugeMax < 1 {
		errs = append(errs, fmt.Sprintf("combat.gauge_max must be >= 1, got %d", c.GaugeMax))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateArena(a ArenaConfig) error {
	var errs []string
	if a.RosterDir == "" {
		errs = append(errs, "arena.roster_dir must not be empty")
	}
	if a.MaxRounds < 1 {
		errs = append(errs, fmt.Sprintf("arena.max_rounds must be >= 1, got %d", a.MaxRounds))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ARENA_ prefix
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("combat.attack_cost", 3)
	v.SetDefault("combat.defend_cost", 2)
	v.SetDefault("combat.move_cost", 1)
	v.SetDefault("combat.gauge_max", 6)
	v.SetDefault("combat.seed", 0)

	v.SetDefault("arena.roster_dir", "content/combatants")
	v.SetDefault("arena.max_rounds", 20)
}
