package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	dotenvx "github.com/fabianopinto/dotenvx-go"
)

// cliConfig holds the I/O and logging configuration shared by every
// subcommand. newRootCmd always builds it from the process's stdio; tests
// capture command output through cobra's SetOut/SetErr instead.
type cliConfig struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    zerolog.Logger
}

func defaultConfig() *cliConfig {
	stderr := os.Stderr

	var w io.Writer = stderr
	if isatty.IsTerminal(stderr.Fd()) {
		w = zerolog.ConsoleWriter{Out: stderr}
	}

	return &cliConfig{
		Stdout: os.Stdout,
		Stderr: stderr,
		Log:    zerolog.New(w).With().Timestamp().Logger(),
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:           "dotenvx",
		Short:         "manage encrypted .env files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)

	root.AddCommand(
		newKeypairCmd(cfg),
		newEncryptCmd(cfg),
		newDecryptCmd(cfg),
		newSetCmd(cfg),
		newGetCmd(cfg),
		newLsCmd(cfg),
		newRunCmd(cfg),
	)
	return root
}

// exitCode classifies err per the CLI's exit-code contract: 1 for user
// error (bad flags, missing files, malformed input), 2 for crypto or I/O
// failure, 1 for anything else uncategorized.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, os.ErrNotExist) {
		return 1
	}

	var parseErr *dotenvx.ParseError
	var invalidEncoding *dotenvx.InvalidEncoding
	if errors.As(err, &parseErr) || errors.As(err, &invalidEncoding) {
		return 1
	}

	var invalidPriv *dotenvx.InvalidPrivateKey
	var invalidPub *dotenvx.InvalidPublicKey
	var invalidEnv *dotenvx.InvalidEnvelope
	var missingKey *dotenvx.MissingPrivateKey
	var ioErr *dotenvx.IoError
	var pathErr *os.PathError
	switch {
	case errors.As(err, &invalidPriv),
		errors.As(err, &invalidPub),
		errors.As(err, &invalidEnv),
		errors.As(err, &missingKey),
		errors.As(err, &ioErr),
		errors.As(err, &pathErr),
		errors.Is(err, dotenvx.ErrDecryptionFailed),
		errors.Is(err, dotenvx.ErrRngFailure):
		return 2
	}
	return 1
}
