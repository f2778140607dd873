package api

import (
	"context"
	"net/http"
	"sync"

	"bike-shop/config"
	_ "bike-shop/docs"
	"bike-shop/models"
	"bike-shop/server"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

var (
	app     *server.App
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		config.SetupLogger(cfg)

		app, initErr = server.New(context.Background(), cfg)
		if initErr != nil {
			log.WithError(initErr).Error("Failed to initialise app")
			return
		}
		if cfg.SeedOnStart {
			app.Seed(context.Background())
		}
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Service unavailable",
		})
		return
	}
	app.Router.ServeHTTP(w, r)
}
