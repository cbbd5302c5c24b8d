package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"avash.dev/internal/app"
	"avash.dev/internal/config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio site",
		Long: `portfolio serves the landing page, the project catalog and the
markdown pages of the site, or exports them as static files.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "config file (default is ./config.yaml)")

	cmd.AddCommand(
		newServeCmd(),
		newBuildCmd(),
		newCheckCmd(),
		newProjectsCmd(),
	)
	return cmd
}

// setup loads configuration, builds the logger and loads the site
func setup(cmd *cobra.Command) (*app.App, func(), error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = logger.Sync() }

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to load site", zap.Error(err))
		cleanup()
		return nil, nil, err
	}
	return a, cleanup, nil
}
