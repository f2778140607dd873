// Package server wires configuration, storage and services into the HTTP
// router shared by the long-running process and the serverless entry.
package server

import (
	"context"
	"errors"
	"fmt"

	"bike-shop/config"
	"bike-shop/controllers"
	"bike-shop/handler"
	"bike-shop/libs"
	"bike-shop/models"
	"bike-shop/repositories"
	"bike-shop/routes"
	"bike-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const serviceName = "Bike Shop API"

type Services struct {
	Items   *services.ItemService
	Seeder  *services.SeedService
	Auth    *services.AuthService
	Images  *services.ImageService
	Contact *services.ContactService
}

// NewServices accepts a nil cache and a nil uploader.
func NewServices(cfg *config.Config, repo services.ItemRepository, cache services.ItemCache, uploader services.ImageUploader) *Services {
	var sender services.EmailSender
	if mailer := newMailer(cfg); mailer != nil {
		sender = mailer
	}

	return &Services{
		Items:  services.NewItemService(repo, cache),
		Seeder: services.NewSeedService(repo, cache, models.StarterItems()),
		Auth: services.NewAuthService(services.AdminAccount{
			Email:        cfg.AdminEmail,
			PasswordHash: cfg.AdminPasswordHash,
		}, cfg.JWTSecret, cfg.JWTExpiry),
		Images:  services.NewImageService(uploader, cfg.UploadDir, cfg.MaxUploadSize),
		Contact: services.NewContactService(sender, cfg.ContactInbox),
	}
}

func NewRouter(cfg *config.Config, svc *Services, checks map[string]handler.Check) *gin.Engine {
	return routes.NewRouter(cfg.OriginURL, routes.Handlers{
		Items:      controllers.NewItemController(svc.Items, svc.Images),
		Auth:       controllers.NewAuthController(svc.Auth),
		Storefront: controllers.NewStorefrontController(svc.Items),
		Contact:    controllers.NewContactController(svc.Contact),
		Health:     handler.Health(serviceName, checks),
		Validator:  svc.Auth,
		UploadDir:  cfg.UploadDir,
	})
}

// App is a connected instance: database, optional cache, services, router.
type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Services *Services

	pool  *pgxpool.Pool
	redis *redis.Client
}

// New connects the database, applies migrations and builds the router.
// Redis and cloudinary are optional.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := config.RunMigrations(cfg.DSN()); err != nil {
		config.CloseDB(pool)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	rdb := config.ConnectRedis(ctx, cfg)

	var cache services.ItemCache
	if rdb != nil {
		cache = services.NewRedisItemCache(rdb, cfg.CacheTTL)
	}

	svc := NewServices(cfg, repositories.NewItemRepository(pool), cache, newUploader(cfg))

	checks := map[string]handler.Check{
		"database": pool.Ping,
		"cache":    nil,
	}
	if rdb != nil {
		checks["cache"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	return &App{
		Config:   cfg,
		Router:   NewRouter(cfg, svc, checks),
		Services: svc,
		pool:     pool,
		redis:    rdb,
	}, nil
}

// Seed fills an empty catalog with the starter items. Failures are logged
// only.
func (a *App) Seed(ctx context.Context) {
	if _, err := a.Services.Seeder.SeedIfEmpty(ctx); err != nil {
		log.WithError(err).Error("Error seeding database")
	}
}

func (a *App) Close() {
	config.CloseRedis(a.redis)
	config.CloseDB(a.pool)
}

func newUploader(cfg *config.Config) services.ImageUploader {
	uploader, err := libs.NewCloudinaryUploader(libs.CloudinaryCredentials{
		URL:       cfg.CloudinaryURL,
		CloudName: cfg.CloudName,
		APIKey:    cfg.CloudAPIKey,
		APISecret: cfg.CloudAPISecret,
	})
	if err != nil {
		if errors.Is(err, libs.ErrCloudinaryNotConfigured) {
			log.Info("Cloudinary not configured, storing images locally")
		} else {
			log.WithError(err).Warn("Cloudinary init failed, storing images locally")
		}
		return nil
	}
	return uploader
}

func newMailer(cfg *config.Config) *libs.Mailer {
	mailer, err := libs.NewMailer(libs.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	if err != nil {
		log.Info("SMTP not configured, contact form disabled")
		return nil
	}
	return mailer
}
