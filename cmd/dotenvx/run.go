package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	dotenvx "github.com/fabianopinto/dotenvx-go"
)

func newRunCmd(cfg *cliConfig) *cobra.Command {
	var files []string
	var overload bool

	cmd := &cobra.Command{
		Use:   "run -- CMD [ARGS...]",
		Short: "load dotenv files and run a command with the resulting environment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(files) == 0 {
				files = []string{".env"}
			}

			env, err := dotenvx.Load(files, dotenvx.WithOverload(overload))
			if err != nil {
				return fmt.Errorf("loading %v: %w", files, err)
			}
			cfg.Log.Info().Strs("files", files).Str("command", args[0]).Msg("run")

			child := exec.Command(args[0], args[1:]...)
			child.Stdin = cmd.InOrStdin()
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()
			child.Env = mergeEnv(os.Environ(), env, overload)

			if err := child.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					exitFunc(exitErr.ExitCode())
					return nil
				}
				return fmt.Errorf("running %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "dotenv file(s) to load (repeatable, in order)")
	cmd.Flags().BoolVar(&overload, "overload", false, "let loaded values overwrite the process environment")
	return cmd
}

// mergeEnv builds a child process environment: base holds "KEY=VALUE"
// process-environment entries, loaded holds the dotenv-resolved bindings.
// When overload is false, a key already present in base is left untouched.
func mergeEnv(base []string, loaded map[string]string, overload bool) []string {
	present := make(map[string]bool, len(base))
	for _, kv := range base {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			present[kv[:i]] = true
		}
	}

	out := append([]string{}, base...)
	for k, v := range loaded {
		if !overload && present[k] {
			continue
		}
		out = append(out, k+"="+v)
	}
	return out
}
