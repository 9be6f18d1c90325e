package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newLsCmd(cfg *cliConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [DIR]",
		Short: "list .env* files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("reading %s: %w", dir, err)
			}

			var names []string
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if e.Name() == ".env" || strings.HasPrefix(e.Name(), ".env.") {
					names = append(names, e.Name())
				}
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, name))
			}
			return nil
		},
	}
	return cmd
}
