package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"denpicker/internal/selection"
	"denpicker/internal/ui/logic"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the saved den",
		Long: `Print the saved den in slot order. Names are looked up in the catalog;
when the catalog cannot be fetched only the identifiers are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			a.store.Initialize()

			names := map[string]string{}
			if !offline && a.store.Len() > 0 {
				index, err := a.fetchCatalog(cmd.Context())
				if err != nil {
					a.logger.Warn("catalog unavailable for list", zap.Error(err))
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: catalog unavailable: %v\n", err)
				}
				for _, id := range a.store.Items() {
					names[id] = logic.Capitalize(index.Name(id))
				}
			}

			out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, slot := range a.store.Slots() {
				if !slot.Occupied {
					fmt.Fprintf(out, "%d\t-\t\n", slot.Index+1)
					continue
				}
				fmt.Fprintf(out, "%d\t#%s\t%s\n", slot.Index+1, slot.ID, names[slot.ID])
			}
			if err := out.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d in den\n", a.store.Len(), selection.MaxLength)
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Do not fetch the catalog")
	return cmd
}
