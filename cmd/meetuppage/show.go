package main

import (
	"github.com/spf13/cobra"

	"github.com/pershin-daniil/MeetupPage/pkg/render"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch the meetup once and print its agenda",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, app, err := setup(cmd)
			if err != nil {
				return err
			}
			if err = app.Mount(cmd.Context()); err != nil {
				return err
			}
			return render.Meetup(cmd.OutOrStdout(), app.Meetup())
		},
	}
	addPageFlags(cmd)
	return cmd
}
