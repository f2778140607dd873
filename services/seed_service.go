package services

import (
	"context"
	"fmt"

	"bike-shop/models"

	log "github.com/sirupsen/logrus"
)

type SeedService struct {
	repo    ItemRepository
	cache   ItemCache
	starter []models.Item
}

func NewSeedService(repo ItemRepository, cache ItemCache, starter []models.Item) *SeedService {
	return &SeedService{repo: repo, cache: cache, starter: starter}
}

// SeedIfEmpty writes the starter items only when the collection holds no
// items at all. Existing data is never touched.
func (s *SeedService) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items before seeding: %w", err)
	}
	if count > 0 {
		log.WithField("items", count).Debug("Items present, skipping seed")
		return 0, nil
	}

	log.Info("No items found in DB, seeding initial data...")
	inserted, err := s.repo.InsertMany(ctx, s.starter)
	if err != nil {
		return 0, fmt.Errorf("seed items: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.WithError(err).Warn("Item cache invalidation failed after seeding")
		}
	}

	log.WithField("inserted", inserted).Info("Database seeded successfully")
	return inserted, nil
}
