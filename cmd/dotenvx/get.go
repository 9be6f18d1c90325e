package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	dotenvx "github.com/fabianopinto/dotenvx-go"
)

func newGetCmd(cfg *cliConfig) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "get [KEY]",
		Short: "load dotenv files and print one value or the whole environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(files) == 0 {
				files = []string{".env"}
			}

			if len(args) == 1 {
				v, ok, err := dotenvx.Get(files, args[0])
				if err != nil {
					return fmt.Errorf("loading %v: %w", files, err)
				}
				if !ok {
					return fmt.Errorf("key %s not found", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			env, err := dotenvx.GetAll(files)
			if err != nil {
				return fmt.Errorf("loading %v: %w", files, err)
			}
			cfg.Log.Info().Strs("files", files).Int("count", len(env)).Msg("loaded")
			return json.NewEncoder(cmd.OutOrStdout()).Encode(env)
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "dotenv file(s) to load (repeatable, in order)")
	return cmd
}
