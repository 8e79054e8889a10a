package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/pkg/editor"
)

func fmtCmd() *cobra.Command {
	var (
		start int
		end   int
	)

	cmd := cobra.Command{
		Use:   "fmt",
		Short: "Apply a formatting operation to the article content",
	}

	pflags := cmd.PersistentFlags()
	pflags.IntVar(&start, "start", 0, "Selection start as a byte offset into the content.")
	pflags.IntVar(&end, "end", 0, "Selection end as a byte offset into the content.")

	// run wires a formatting op through the stored content: load, apply to
	// the selection, write the result back through the state store.
	run := func(cmd *cobra.Command, op editor.Op) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.closeOnly()

		surface := editor.NewSurface(app.store.Snapshot().Content)
		surface.Select(editor.Span{Start: start, End: end})

		if !surface.Apply(op) {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to format")
			return nil
		}

		app.store.SetContent(surface.Content())
		return app.finish()
	}

	simple := func(use, short string, op editor.Op) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, op)
			},
		}
	}

	cmd.AddCommand(simple("bold", "Wrap the selection in strong markup", editor.Bold()))
	cmd.AddCommand(simple("italic", "Wrap the selection in emphasis markup", editor.Italic()))
	cmd.AddCommand(simple("underline", "Underline the selection", editor.Underline()))
	cmd.AddCommand(simple("quote", "Wrap the selection in a blockquote", editor.Blockquote()))

	var ordered bool
	list := cobra.Command{
		Use:   "list",
		Short: "Convert the selected lines into a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, editor.List(ordered))
		},
	}
	list.Flags().BoolVar(&ordered, "ordered", false, "Produce an ordered list.")
	cmd.AddCommand(&list)

	var level int
	heading := cobra.Command{
		Use:   "heading",
		Short: "Toggle the enclosing block between a heading and a paragraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, editor.ToggleHeading(level))
		},
	}
	heading.Flags().IntVar(&level, "level", 2, "Heading level, 1 to 3.")
	cmd.AddCommand(&heading)

	var alignTo string
	align := cobra.Command{
		Use:   "align",
		Short: "Set the text alignment of the enclosing block",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := editor.Alignment(alignTo)
			switch a {
			case editor.AlignLeft, editor.AlignCenter, editor.AlignRight, editor.AlignJustify:
			default:
				return errors.Errorf("invalid alignment: %q", alignTo)
			}
			return run(cmd, editor.Align(a))
		},
	}
	align.Flags().StringVar(&alignTo, "to", "left", "One of left, center, right, justify.")
	cmd.AddCommand(&align)

	var (
		linkText string
		linkURL  string
		newTab   bool
	)
	link := cobra.Command{
		Use:   "link",
		Short: "Replace the selection with a link",
		RunE: func(cmd *cobra.Command, args []string) error {
			if linkURL == "" {
				return errors.New("--url is required")
			}
			return run(cmd, editor.InsertLink(linkText, linkURL, newTab))
		},
	}
	link.Flags().StringVar(&linkText, "text", "", "Link text; defaults to the selection, then to \"Link\".")
	link.Flags().StringVar(&linkURL, "url", "", "Link target URL.")
	link.Flags().BoolVar(&newTab, "new-tab", false, "Open the link in a new tab.")
	cmd.AddCommand(&link)

	var (
		imageURL string
		imageAlt string
	)
	image := cobra.Command{
		Use:   "image",
		Short: "Insert an image at the selection start",
		RunE: func(cmd *cobra.Command, args []string) error {
			if imageURL == "" {
				return errors.New("--url is required")
			}
			return run(cmd, editor.InsertImage(imageURL, imageAlt))
		},
	}
	image.Flags().StringVar(&imageURL, "url", "", "Image URL.")
	image.Flags().StringVar(&imageAlt, "alt", "", "Image alt text.")
	cmd.AddCommand(&image)

	return &cmd
}
