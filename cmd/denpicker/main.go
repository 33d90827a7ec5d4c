package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "denpicker",
		Short: "Pick up to six catalog entries for your den",
		Long: `denpicker is a terminal picker for a den of up to six Pokemon or characters.

Run without arguments to open the picker. The selection is saved locally
and restored on the next start.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, opts)
		},
	}

	opts.bindFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newClearCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
