package commands

import (
	"bike-shop/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	logLevel string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "bike-shop",
		Short:         "Motorcycle storefront: catalog API, seeding and a terminal shop",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.LoadConfig()
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			config.SetupLogger(cfg)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(serveCmd(), seedCmd(), hashPasswordCmd(), browseCmd())

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("Command failed")
		return err
	}
	return nil
}
