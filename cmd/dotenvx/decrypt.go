package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dotenvx "github.com/fabianopinto/dotenvx-go"
)

func newDecryptCmd(cfg *cliConfig) *cobra.Command {
	var file string
	var privateKey string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "decrypt encrypted values in a dotenv file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []dotenvx.DecryptFileOption
			if privateKey != "" {
				opts = append(opts, dotenvx.WithDecryptPrivateKeyOverride(privateKey))
			}
			if err := dotenvx.DecryptFile(file, opts...); err != nil {
				return fmt.Errorf("decrypting %s: %w", file, err)
			}
			cfg.Log.Info().Str("file", file).Msg("decrypted")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", ".env", "dotenv file to decrypt")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "private key to decrypt with, overriding the registry")
	return cmd
}
