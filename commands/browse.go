package commands

import (
	"time"

	"bike-shop/storefront"
	"bike-shop/storefront/carousel"
	"bike-shop/storefront/catalog"
	"bike-shop/storefront/theme"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	var (
		apiURL    string
		prefsPath string
		interval  time.Duration
		timeout   time.Duration
		announce  bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog and fill a cart from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				log.SetLevel(log.WarnLevel)
			}
			if apiURL == "" {
				apiURL = "http://localhost:" + cfg.Port
			}
			if prefsPath == "" {
				prefsPath = theme.DefaultPrefsPath()
			}

			service := catalog.NewHTTPService(apiURL, timeout)
			defer service.Close()

			app := storefront.New(storefront.Options{
				Service:        service,
				Prefs:          theme.NewPrefs(prefsPath),
				Clock:          clock.New(),
				Interval:       interval,
				Out:            cmd.OutOrStdout(),
				AnnounceSlides: announce,
			})
			defer app.Close()

			ctx := cmd.Context()
			// A failed load is already on screen; the session stays open for reload.
			_ = app.Start(ctx)
			return app.Run(ctx, cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "catalog API base URL (default http://localhost:<port>)")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.bike-shop/prefs.yaml)")
	cmd.Flags().DurationVar(&interval, "interval", carousel.DefaultInterval, "hero slide autoplay period")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "catalog request timeout")
	cmd.Flags().BoolVar(&announce, "announce-slides", false, "print every autoplay slide change")
	return cmd
}
