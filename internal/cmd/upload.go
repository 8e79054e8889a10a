package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/upload"
)

func uploadCmd() *cobra.Command {
	var contentType string

	cmd := cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a media file and print its public URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to open %q", args[0])
			}
			defer func() { _ = f.Close() }()

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			if app.cfg.UploadURL == "" {
				return errors.New("no upload endpoint configured")
			}

			ct := contentType
			if ct == "" {
				ct = mime.TypeByExtension(filepath.Ext(args[0]))
			}
			if ct == "" {
				ct = "application/octet-stream"
			}

			c := upload.NewClient(app.cfg.UploadURL, upload.WithLogger(app.logger))
			url, err := c.Upload(cmd.Context(), filepath.Base(args[0]), ct, f)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "MIME type of the file; inferred from the extension when unset.")

	return &cmd
}
