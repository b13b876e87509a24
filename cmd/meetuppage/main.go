package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pershin-daniil/MeetupPage/internal/config"
	"github.com/pershin-daniil/MeetupPage/pkg/counter"
	"github.com/pershin-daniil/MeetupPage/pkg/logger"
	"github.com/pershin-daniil/MeetupPage/pkg/meetupapi"
	"github.com/pershin-daniil/MeetupPage/pkg/page"
	"github.com/pershin-daniil/MeetupPage/pkg/service"
)

var version = "0.0.1"

func main() {
	rootCmd := &cobra.Command{
		Use:           "meetuppage",
		Short:         "Meetup page and counter backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		serveCmd(),
		showCmd(),
		countCmd(),
		versionCmd(),
	)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// setup loads the configuration and wires the page service.
func setup(cmd *cobra.Command) (config.Config, *logrus.Logger, *service.PageService, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if cmd.Flags().Changed("id") {
		if cfg.MeetupID, err = cmd.Flags().GetInt("id"); err != nil {
			return config.Config{}, nil, nil, err
		}
	}
	if cmd.Flags().Changed("locale") {
		if cfg.Locale, err = cmd.Flags().GetString("locale"); err != nil {
			return config.Config{}, nil, nil, err
		}
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, nil, nil, err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	client, err := meetupapi.New(log, cfg.APIURL, meetupapi.WithTimeout(cfg.FetchTimeout))
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	p := page.New(log, client, cfg.APIURL, cfg.MeetupID, cfg.Locale)
	app := service.NewPageService(log, p, counter.New(log))
	return cfg, log, app, nil
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("id", config.DefaultMeetupID, "meetup id (overrides MEETUP_ID)")
	cmd.Flags().String("locale", "", "display locale such as ru-RU (overrides LOCALE)")
}
