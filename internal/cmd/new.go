package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/ulid"
)

func newCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "new",
		Short: "Mint a new document identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ulid.GenerateID())
			return nil
		},
	}
	return &cmd
}
