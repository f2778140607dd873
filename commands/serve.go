package commands

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bike-shop/server"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and storefront page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
				return err
			}

			app, err := server.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           app.Router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"port": cfg.Port,
				"env":  cfg.AppEnv,
			}).Info("Server is running")
			log.Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- srv.Serve(ln)
			}()

			if cfg.SeedOnStart {
				go app.Seed(ctx)
			}

			select {
			case err := <-serveErr:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides APP_PORT / PORT)")
	return cmd
}
