package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dotenvx "github.com/fabianopinto/dotenvx-go"
)

func newKeypairCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "keypair",
		Short: "generate a new secp256k1 keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := dotenvx.GenerateKeypair()
			if err != nil {
				return fmt.Errorf("generating keypair: %w", err)
			}
			cfg.Log.Info().Msg("generated keypair")
			fmt.Fprintf(cmd.OutOrStdout(), "DOTENV_PUBLIC_KEY=%q\n", kp.PublicKeyHex())
			fmt.Fprintf(cmd.OutOrStdout(), "DOTENV_PRIVATE_KEY=%q\n", kp.PrivateKeyHex())
			return nil
		},
	}
}
