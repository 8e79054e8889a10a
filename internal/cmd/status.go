package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "status",
		Short: "Show the current article and its derived metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			st := app.store.Snapshot()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Document:     %s\n", fDocument)
			fmt.Fprintf(out, "Title:        %s\n", st.Title)
			fmt.Fprintf(out, "Category:     %s\n", st.Category)
			fmt.Fprintf(out, "Status:       %s\n", st.Status)
			if st.ScheduledAt != nil {
				fmt.Fprintf(out, "Scheduled:    %s\n", st.ScheduledAt.Format(time.RFC3339))
			}
			fmt.Fprintf(out, "Tags:         %s\n", strings.Join(st.Tags, ", "))
			fmt.Fprintf(out, "Words:        %d\n", st.WordCount)
			fmt.Fprintf(out, "Reading time: %d min\n", st.ReadingTime)
			fmt.Fprintf(out, "SEO score:    %d/100\n", st.SEOScore)
			if len(st.SEOKeywords) > 0 {
				fmt.Fprintf(out, "Keywords:     %s\n", strings.Join(st.SEOKeywords, ", "))
			}
			if st.LastSaved != nil {
				fmt.Fprintf(out, "Last saved:   %s\n", st.LastSaved.Format(time.RFC3339))
			} else {
				fmt.Fprintln(out, "Last saved:   never")
			}
			return nil
		},
	}
	return &cmd
}
