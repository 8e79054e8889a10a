package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/pkg/seo"
)

func seoCmd() *cobra.Command {
	var strategy string

	cmd := cobra.Command{
		Use:   "seo",
		Short: "Score the article and print content keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strategy != "" {
				switch seo.Strategy(strategy) {
				case seo.StrategyEditorial, seo.StrategyStructural:
				default:
					return errors.Errorf("invalid strategy: %q", strategy)
				}
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			st := app.store.Snapshot()

			strat := seo.Strategy(app.cfg.SEOStrategy)
			if strategy != "" {
				strat = seo.Strategy(strategy)
			}

			score := seo.Score(strat, st)
			keywords := seo.Keywords(st.Content, app.cfg.MaxKeywords)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Strategy: %s\n", strat)
			fmt.Fprintf(out, "Score:    %d/100\n", score)
			if len(keywords) > 0 {
				fmt.Fprintf(out, "Keywords: %s\n", strings.Join(keywords, ", "))
			} else {
				fmt.Fprintln(out, "Keywords: (none)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Scoring strategy, editorial or structural; defaults to the configured one.")

	return &cmd
}
