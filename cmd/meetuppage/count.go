package main

import (
	"github.com/spf13/cobra"

	"github.com/pershin-daniil/MeetupPage/pkg/counter"
	"github.com/pershin-daniil/MeetupPage/pkg/logger"
	"github.com/pershin-daniil/MeetupPage/pkg/render"
)

func countCmd() *cobra.Command {
	var clicks int
	var level string
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Click the counter N times and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := counter.New(logger.New(level, "text"))
			out := cmd.OutOrStdout()
			unsubscribe := c.Subscribe(func(count int) {
				_ = render.Counter(out, count)
			})
			defer unsubscribe()
			if err := render.Counter(out, c.Count()); err != nil {
				return err
			}
			for i := 0; i < clicks; i++ {
				c.Increment()
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&clicks, "clicks", "n", 1, "number of clicks")
	cmd.Flags().StringVar(&level, "log-level", "info", "log level")
	return cmd
}
