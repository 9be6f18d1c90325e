package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dotenvx "github.com/fabianopinto/dotenvx-go"
)

func newSetCmd(cfg *cliConfig) *cobra.Command {
	var file string
	var plain bool

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "set a single entry in a dotenv file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := dotenvx.Set(file, key, value, dotenvx.WithPlain(plain)); err != nil {
				return fmt.Errorf("setting %s: %w", key, err)
			}
			cfg.Log.Info().Str("file", file).Str("key", key).Msg("set")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", ".env", "dotenv file to modify")
	cmd.Flags().BoolVar(&plain, "plain", false, "write the value unencrypted")
	return cmd
}
