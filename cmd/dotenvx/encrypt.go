package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dotenvx "github.com/fabianopinto/dotenvx-go"
)

func newEncryptCmd(cfg *cliConfig) *cobra.Command {
	var file string
	var includeKeys []string
	var excludeKeys []string
	var publicKey string

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "encrypt plaintext values in a dotenv file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []dotenvx.EncryptFileOption{dotenvx.WithExcludeKeys(excludeKeys...)}
			if len(includeKeys) > 0 {
				opts = append(opts, dotenvx.WithIncludeKeys(includeKeys...))
			}
			if publicKey != "" {
				opts = append(opts, dotenvx.WithPublicKeyOverride(publicKey))
			}
			if err := dotenvx.EncryptFile(file, opts...); err != nil {
				return fmt.Errorf("encrypting %s: %w", file, err)
			}
			cfg.Log.Info().Str("file", file).Msg("encrypted")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", ".env", "dotenv file to encrypt")
	cmd.Flags().StringSliceVarP(&includeKeys, "key", "K", nil, "only encrypt these keys (repeatable)")
	cmd.Flags().StringSliceVarP(&excludeKeys, "exclude-key", "e", nil, "skip these keys (repeatable)")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "encrypt against this public key instead of the file's own")
	return cmd
}
