package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/pkg/article"
	"github.com/quillhq/quill/pkg/structure/frontmatter"
)

func importCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "import FILE",
		Short: "Import a markdown file with optional frontmatter into the article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to read %q", args[0])
			}

			fm, body, err := frontmatter.Split(data)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			content := strings.TrimLeft(string(body), "\n")
			patch := article.Patch{Content: &content}
			if fm != nil {
				if fm.Title != "" {
					patch.Title = &fm.Title
				}
				if fm.Excerpt != "" {
					patch.Excerpt = &fm.Excerpt
				}
				if fm.Tags != nil {
					patch.Tags = &fm.Tags
				}
				if fm.Category != "" {
					patch.Category = &fm.Category
				}
				if fm.Status != "" {
					status := article.Status(fm.Status)
					patch.Status = &status
				}
			}

			app.store.UpdateData(patch)
			if err := app.finish(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %q\n", args[0])
			return nil
		},
	}
	return &cmd
}

func exportCmd() *cobra.Command {
	var format string

	cmd := cobra.Command{
		Use:   "export FILE",
		Short: "Export the article as a markdown file with frontmatter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			st := app.store.Snapshot()

			fm := frontmatter.Frontmatter{
				Title:    st.Title,
				Excerpt:  st.Excerpt,
				Tags:     st.Tags,
				Category: st.Category,
				Status:   string(st.Status),
			}

			data, err := frontmatter.Compose(&fm, []byte(st.Content), frontmatter.Format(format))
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[0], data, 0o600); err != nil {
				return errors.Wrapf(err, "failed to write %q", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %q\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Frontmatter format, yaml or toml.")

	return &cmd
}
