package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the saved den",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			a.store.Initialize()
			previous := a.store.Len()
			a.store.Clear()

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d from den\n", previous)
			return nil
		},
	}
}
