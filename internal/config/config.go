// Package config resolves zpass settings from flags, environment and defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zarlcorp/zpass/internal/generator"
)

// EnvPrefix is prepended to every environment variable, e.g. ZPASS_LENGTH.
const EnvPrefix = "ZPASS"

// keys shared by flags, env and defaults
const (
	KeyLength = "length"
	KeyReveal = "reveal"
)

// ErrInvalid is returned when a resolved setting is out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds the resolved settings.
type Config struct {
	// Length of generated passwords.
	Length int
	// Reveal starts the checker with the password visible.
	Reveal bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Length: generator.DefaultLength}
}

// Load resolves settings in order flag, environment, default. Flags are
// only bound when present in fs; a nil fs skips flag binding.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault(KeyLength, def.Length)
	v.SetDefault(KeyReveal, def.Reveal)

	if fs != nil {
		for _, k := range []string{KeyLength, KeyReveal} {
			f := fs.Lookup(k)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(k, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", k, err)
			}
		}
	}

	length, err := cast.ToIntE(v.Get(KeyLength))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s %q is not a number", ErrInvalid, KeyLength, v.GetString(KeyLength))
	}
	reveal, err := cast.ToBoolE(v.Get(KeyReveal))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s %q is not a boolean", ErrInvalid, KeyReveal, v.GetString(KeyReveal))
	}

	cfg := Config{Length: length, Reveal: reveal}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, KeyLength, c.Length)
	}
	return nil
}
