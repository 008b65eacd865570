// Package config loads the fips202sum defaults file.
//
// An example file:
//
//	algorithm = "shake256"
//	length = 64
//
//	[log]
//	level = "debug"
//	json = true
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/Giulio2002/fips202/internal/kat"
	"github.com/Giulio2002/fips202/internal/log"
)

// MaxLength bounds the XOF output length accepted from configuration.
const MaxLength = 1 << 20

// Config holds the command defaults.
type Config struct {
	// Algorithm is one of the kat algorithm names.
	Algorithm string `toml:"algorithm"`
	// Length is the XOF output length in bytes; zero selects the algorithm's
	// default. Ignored for fixed-length hashes.
	Length int `toml:"length"`
	Log    Log `toml:"log"`
}

// Log configures the command logger.
type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm: kat.SHA3_256,
		Log:       Log{Level: "info"},
	}
}

// Load overlays the TOML file at path on Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	switch c.Algorithm {
	case kat.SHA3_256, kat.SHA3_512, kat.SHAKE128, kat.SHAKE256, kat.Keccak256:
	default:
		return errors.Errorf("unknown algorithm %q", c.Algorithm)
	}
	if c.Length < 0 || c.Length > MaxLength {
		return errors.Errorf("length %d out of range [0, %d]", c.Length, MaxLength)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
