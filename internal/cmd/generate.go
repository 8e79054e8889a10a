package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/client"
)

func generateCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "generate",
		Short: "Generate content through the backend",
	}

	var (
		prompt string
		length int
		apply  bool
	)
	articleGen := cobra.Command{
		Use:   "article",
		Short: "Generate article content from a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			token := app.apiToken()
			if token == "" {
				return errors.Errorf("no session token; set %s", app.cfg.APITokenEnv)
			}

			c := client.New(app.cfg.APIBaseURL, token, client.WithLogger(app.logger))
			content, err := c.GenerateArticle(cmd.Context(), prompt, length)
			if err != nil {
				return err
			}

			if apply {
				app.store.SetContent(content)
				if err := app.finish(); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}
	articleGen.Flags().StringVar(&prompt, "prompt", "", "What the article should be about.")
	articleGen.Flags().IntVar(&length, "length", 800, "Target word count.")
	articleGen.Flags().BoolVar(&apply, "apply", false, "Replace the article content with the result.")
	_ = articleGen.MarkFlagRequired("prompt")
	cmd.AddCommand(&articleGen)

	var keyword string
	titles := cobra.Command{
		Use:   "titles",
		Short: "Generate blog title suggestions for a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			token := app.apiToken()
			if token == "" {
				return errors.Errorf("no session token; set %s", app.cfg.APITokenEnv)
			}

			c := client.New(app.cfg.APIBaseURL, token, client.WithLogger(app.logger))
			content, err := c.GenerateBlogTitles(cmd.Context(), keyword)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}
	titles.Flags().StringVar(&keyword, "keyword", "", "Keyword to build titles around.")
	_ = titles.MarkFlagRequired("keyword")
	cmd.AddCommand(&titles)

	var (
		imagePrompt string
		publish     bool
	)
	image := cobra.Command{
		Use:   "image",
		Short: "Generate an image and print its URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			token := app.apiToken()
			if token == "" {
				return errors.Errorf("no session token; set %s", app.cfg.APITokenEnv)
			}

			c := client.New(app.cfg.APIBaseURL, token, client.WithLogger(app.logger))
			url, err := c.GenerateImage(cmd.Context(), imagePrompt, publish)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	image.Flags().StringVar(&imagePrompt, "prompt", "", "What the image should show.")
	image.Flags().BoolVar(&publish, "publish", false, "Share the image to the community gallery.")
	_ = image.MarkFlagRequired("prompt")
	cmd.AddCommand(&image)

	return &cmd
}
