package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func clearCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "clear",
		Short: "Reset the article to its defaults and purge persisted state",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			app.store.ClearAll()
			fmt.Fprintln(cmd.OutOrStdout(), "cleared")
			return nil
		},
	}
	return &cmd
}
