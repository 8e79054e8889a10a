package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func publishCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "publish",
		Short: "Mark the article as published",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			app.store.Publish()
			if err := app.finish(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "published")
			return nil
		},
	}
	return &cmd
}

func scheduleCmd() *cobra.Command {
	var at string

	cmd := cobra.Command{
		Use:   "schedule",
		Short: "Schedule the article for publication",
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return errors.Wrapf(err, "invalid --at value %q, expected RFC 3339", at)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closeOnly()

			app.store.Schedule(when)
			if err := app.finish(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "scheduled for %s\n", when.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Publication time in RFC 3339 format.")
	_ = cmd.MarkFlagRequired("at")

	return &cmd
}
