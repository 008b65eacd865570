// fips202sum prints SHA-3, SHAKE or Keccak-256 checksums of files.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/Giulio2002/fips202/internal/config"
	"github.com/Giulio2002/fips202/internal/log"
)

// Automatically set through -ldflags
// Example: go install -ldflags "-X main.version=`git describe --tags`"
var version = "master"

var (
	algorithmFlag = &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Usage:   "One of sha3-256, sha3-512, shake128, shake256, keccak256",
	}
	lengthFlag = &cli.IntFlag{
		Name:    "length",
		Aliases: []string{"l"},
		Usage:   "Output length in bytes for shake128/shake256",
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML file with default algorithm, length and log settings",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "If set, verbosity is at the debug level",
	}
	jsonLogFlag = &cli.BoolFlag{
		Name:  "json-log",
		Usage: "Write logs as JSON",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "fips202sum",
		Version:   version,
		Usage:     "print FIPS 202 checksums",
		ArgsUsage: "[FILE...]",
		Flags:     []cli.Flag{algorithmFlag, lengthFlag, configFlag, verboseFlag, jsonLogFlag},
		Action:    sumAction,
		Commands:  []*cli.Command{selftestCmd},
	}
}

var selftestCmd = &cli.Command{
	Name:  "selftest",
	Usage: "check the implementation against known-answer vectors",
	Action: func(c *cli.Context) error {
		l, _, err := setup(c)
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()

		failed := selftest()
		for _, name := range failed {
			l.Errorw("known-answer mismatch", "vector", name)
		}
		if len(failed) > 0 {
			return errors.Errorf("%d known-answer vectors failed", len(failed))
		}
		fmt.Fprintln(c.App.Writer, "ok")
		return nil
	},
}

// setup resolves the configuration and builds the logger. Flags set on the
// command line override the config file.
func setup(c *cli.Context) (log.Logger, config.Config, error) {
	cfg := config.Default()
	if path := c.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, config.Config{}, err
		}
	}
	if c.IsSet(algorithmFlag.Name) {
		cfg.Algorithm = c.String(algorithmFlag.Name)
	}
	if c.IsSet(lengthFlag.Name) {
		cfg.Length = c.Int(lengthFlag.Name)
	}
	if c.Bool(verboseFlag.Name) {
		cfg.Log.Level = "debug"
	}
	if c.Bool(jsonLogFlag.Name) {
		cfg.Log.JSON = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, config.Config{}, err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, config.Config{}, err
	}
	l := log.New(zapcore.AddSync(c.App.ErrWriter), level, cfg.Log.JSON).Named("fips202sum")
	return l, cfg, nil
}

func sumAction(c *cli.Context) error {
	l, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	alg, err := lookupAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	l = l.With("algorithm", alg.name)

	names := c.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		digest, err := sumFile(c.App.Reader, name, alg, cfg.Length)
		if err != nil {
			return err
		}
		l.Debugw("hashed", "file", name, "outlen", len(digest))
		fmt.Fprintf(c.App.Writer, "%s  %s\n", hex.EncodeToString(digest), name)
	}
	return nil
}

func sumFile(stdin io.Reader, name string, alg algorithm, length int) ([]byte, error) {
	if name == "-" {
		return alg.sum(stdin, length)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	digest, err := alg.sum(f, length)
	return digest, errors.WithMessage(err, name)
}
