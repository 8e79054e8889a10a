package cmd

import (
	"github.com/spf13/cobra"
)

var (
	fChdir    string
	fDocument string
	fVerbose  bool
)

func Root() *cobra.Command {
	cmd := cobra.Command{
		Use:           "quill",
		Short:         "Write, format and score articles from the command line",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pflags := cmd.PersistentFlags()

	pflags.StringVar(&fChdir, "chdir", ".", "Switch to a different working directory before executing the command.")
	pflags.StringVar(&fDocument, "document", "default", "The document namespace to operate on.")
	pflags.BoolVar(&fVerbose, "verbose", false, "Enable verbose logging.")

	cmd.AddCommand(statusCmd())
	cmd.AddCommand(setCmd())
	cmd.AddCommand(fmtCmd())
	cmd.AddCommand(seoCmd())
	cmd.AddCommand(previewCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(publishCmd())
	cmd.AddCommand(scheduleCmd())
	cmd.AddCommand(clearCmd())
	cmd.AddCommand(newCmd())
	cmd.AddCommand(generateCmd())
	cmd.AddCommand(communityCmd())
	cmd.AddCommand(uploadCmd())

	return &cmd
}
