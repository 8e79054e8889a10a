package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/pkg/article"
)

func setCmd() *cobra.Command {
	var (
		title       string
		content     string
		contentFile string
		excerpt     string
		tags        []string
		category    string
	)

	cmd := cobra.Command{
		Use:   "set",
		Short: "Update article fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentFile != "" && content != "" {
				return errors.New("--content and --content-file are mutually exclusive")
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			if contentFile != "" {
				data, err := os.ReadFile(contentFile)
				if err != nil {
					return errors.Wrap(err, "failed to read content file")
				}
				content = string(data)
			}

			patch := article.Patch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("content") || contentFile != "" {
				patch.Content = &content
			}
			if cmd.Flags().Changed("excerpt") {
				patch.Excerpt = &excerpt
			}
			if cmd.Flags().Changed("tags") {
				patch.Tags = &tags
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}

			app.store.UpdateData(patch)
			return app.finish()
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Article title.")
	cmd.Flags().StringVar(&content, "content", "", "Article content markup.")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "Read article content from a file.")
	cmd.Flags().StringVar(&excerpt, "excerpt", "", "Article excerpt.")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Article tags.")
	cmd.Flags().StringVar(&category, "category", "", "Article category.")

	return &cmd
}
