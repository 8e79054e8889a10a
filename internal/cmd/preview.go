package cmd

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		format string
		output string
		author string
	)

	cmd := cobra.Command{
		Use:   "preview",
		Short: "Render the current article for preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			st := app.store.Snapshot()

			// Round-trip through the wire encoding so the preview shows
			// exactly what a preview window would receive.
			query := preview.Encode(st, author, time.Now())
			payload := preview.NewDecoder(app.logger).Decode(query)

			rendered, err := preview.Render(payload, preview.Format(format))
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, rendered, 0o600); err != nil {
					return errors.Wrapf(err, "failed to write %q", output)
				}
				return nil
			}

			_, err = cmd.OutOrStdout().Write(rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "html", "Output format, one of html, text, rtf.")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the rendered preview to a file instead of stdout.")
	cmd.Flags().StringVar(&author, "author", "", "Author name shown in the preview byline.")

	return &cmd
}
