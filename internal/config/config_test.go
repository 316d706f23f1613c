package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int(KeyLength, 0, "")
	fs.Bool(KeyReveal, false, "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ZPASS_LENGTH", "")
	t.Setenv("ZPASS_REVEAL", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want %+v", cfg, Default())
	}
	if cfg.Length != 12 {
		t.Errorf("default length = %d, want 12", cfg.Length)
	}
}

func TestLoadPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		args       []string
		wantLength int
	}{
		{"default", "", nil, 12},
		{"unset flag keeps default", "", []string{}, 12},
		{"env", "20", nil, 20},
		{"env with unset flag", "20", []string{}, 20},
		{"flag beats env", "20", []string{"--length=32"}, 32},
		{"flag alone", "", []string{"--length=16"}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ZPASS_LENGTH", tt.env)

			var fs *pflag.FlagSet
			if tt.args != nil {
				fs = newFlags(t, tt.args...)
			}

			cfg, err := Load(fs)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Length != tt.wantLength {
				t.Errorf("length = %d, want %d", cfg.Length, tt.wantLength)
			}
		})
	}
}

func TestLoadReveal(t *testing.T) {
	t.Setenv("ZPASS_REVEAL", "true")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Reveal {
		t.Error("ZPASS_REVEAL=true should enable reveal")
	}

	cfg, err = Load(newFlags(t, "--reveal=false"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Reveal {
		t.Error("--reveal=false should override env")
	}
}

func TestLoadRejectsInvalidLength(t *testing.T) {
	for _, arg := range []string{"--length=0", "--length=-4"} {
		t.Run(arg, func(t *testing.T) {
			t.Setenv("ZPASS_LENGTH", "")
			_, err := Load(newFlags(t, arg))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadIgnoresMissingFlags(t *testing.T) {
	t.Setenv("ZPASS_LENGTH", "")
	fs := pflag.NewFlagSet("other", pflag.ContinueOnError)
	fs.String("unrelated", "", "")

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Length != 12 {
		t.Errorf("length = %d, want 12", cfg.Length)
	}
}

func TestLoadRejectsMalformedEnv(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"length not a number", "ZPASS_LENGTH", "abc", `"abc"`},
		{"length with unit", "ZPASS_LENGTH", "12chars", `"12chars"`},
		{"reveal not a bool", "ZPASS_REVEAL", "maybe", `"maybe"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ZPASS_LENGTH", "")
			t.Setenv("ZPASS_REVEAL", "")
			t.Setenv(tt.key, tt.val)

			_, err := Load(nil)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, should name the bad value %s", err, tt.want)
			}
		})
	}
}
