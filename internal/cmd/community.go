package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quillhq/quill/internal/client"
)

func communityCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "community",
		Short: "Browse the community gallery",
	}

	newClient := func() (*client.Client, *app, error) {
		a, err := newApp()
		if err != nil {
			return nil, nil, err
		}
		token := a.apiToken()
		if token == "" {
			a.closeOnly()
			return nil, nil, errors.Errorf("no session token; set %s", a.cfg.APITokenEnv)
		}
		return client.New(a.cfg.APIBaseURL, token, client.WithLogger(a.logger)), a, nil
	}

	list := cobra.Command{
		Use:   "list",
		Short: "List published creations",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, a, err := newClient()
			if err != nil {
				return err
			}
			defer a.closeOnly()

			creations, err := c.ListPublished(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(creations) == 0 {
				fmt.Fprintln(out, "no published creations")
				return nil
			}
			for _, cr := range creations {
				fmt.Fprintf(out, "%d\t%s\t%d likes\t%s\n", cr.ID, cr.Type, len(cr.Likes), cr.Prompt)
			}
			return nil
		},
	}
	cmd.AddCommand(&list)

	like := cobra.Command{
		Use:   "like ID",
		Short: "Toggle a like on a creation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid creation id %q", args[0])
			}

			c, a, err := newClient()
			if err != nil {
				return err
			}
			defer a.closeOnly()

			msg, err := c.ToggleLike(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.AddCommand(&like)

	return &cmd
}
